package service

import (
	"testing"
	"time"

	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionSetup struct {
	*fixture
	svc        *submissionService
	teacher    *model.User
	student    *model.User
	course     *model.Course
	quiz       *model.Assessment
	assignment *model.Assessment
}

func newSubmissionSetup(t *testing.T) *submissionSetup {
	f := newFixture(t)
	teacher := f.user("rob", model.RoleTeacher)
	student := f.user("ada", model.RoleStudent)
	course := f.course("Go Basics", teacher)

	svc := NewSubmissionService(f.assessments, f.attempts, f.courses, NewAnswerKeyScorer()).(*submissionService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	return &submissionSetup{
		fixture:    f,
		svc:        svc,
		teacher:    teacher,
		student:    student,
		course:     course,
		quiz:       f.mcq(course, "Quiz", 50),
		assignment: f.assignment(course, "Essay", 60),
	}
}

func TestSubmitScoresMCQ(t *testing.T) {
	s := newSubmissionSetup(t)
	spent := 12

	res, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{
		AssessmentID: s.quiz.ID,
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: "q1", Answer: "4"},
			{QuestionID: "q2", Answer: "Rome"},
		},
		TimeSpent: &spent,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Score)
	assert.True(t, res.Passed)
	assert.Equal(t, 50.0, res.PassingScore)

	stored, err := s.attempts.FindByID(s.ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, s.student.ID, stored.UserID)
	assert.Equal(t, s.course.ID, stored.CourseID)
	assert.Len(t, stored.Answers, 2)
	require.NotNil(t, stored.TimeSpent)
	assert.Equal(t, 12, *stored.TimeSpent)
	assert.True(t, stored.AttemptDate.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestSubmitEmptyAnswers(t *testing.T) {
	s := newSubmissionSetup(t)

	res, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{AssessmentID: s.quiz.ID, Answers: []dto.SubmittedAnswerDTO{}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
	assert.False(t, res.Passed)
}

func TestSubmitAssignmentWaitsForGrading(t *testing.T) {
	s := newSubmissionSetup(t)

	res, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{
		AssessmentID: s.assignment.ID,
		Answers:      []dto.SubmittedAnswerDTO{{QuestionID: "essay", Answer: "Goroutines are cheap threads."}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, "Assignment submitted for grading", res.Message)
}

func TestSubmitUnknownAssessment(t *testing.T) {
	s := newSubmissionSetup(t)

	_, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{AssessmentID: 9999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGradeAssignment(t *testing.T) {
	s := newSubmissionSetup(t)
	res, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{
		AssessmentID: s.assignment.ID,
		Answers:      []dto.SubmittedAnswerDTO{{QuestionID: "essay", Answer: "text"}},
	})
	require.NoError(t, err)

	graded, err := s.svc.GradeAssignment(s.ctx, s.teacher.ID, res.ID, dto.GradeAssignmentDTO{Score: floatPtr(72.5), Feedback: "Good structure"})
	require.NoError(t, err)
	assert.Equal(t, 72.5, graded.Score)
	assert.True(t, graded.Passed)

	stored, err := s.attempts.FindByID(s.ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 72.5, stored.Score)
	require.NotNil(t, stored.GradedBy)
	assert.Equal(t, s.teacher.ID, *stored.GradedBy)
	require.NotNil(t, stored.Feedback)
	assert.Equal(t, "Good structure", *stored.Feedback)

	graded, err = s.svc.GradeAssignment(s.ctx, s.teacher.ID, res.ID, dto.GradeAssignmentDTO{Score: floatPtr(59.99)})
	require.NoError(t, err)
	assert.False(t, graded.Passed)
}

func TestGradeAssignmentRejections(t *testing.T) {
	s := newSubmissionSetup(t)
	essay, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{AssessmentID: s.assignment.ID})
	require.NoError(t, err)
	quiz, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{AssessmentID: s.quiz.ID})
	require.NoError(t, err)

	tests := []struct {
		name     string
		graderID string
		resultID uint
		score    *float64
		wantErr  error
	}{
		{"missing score", s.teacher.ID, essay.ID, nil, ErrValidation},
		{"score above range", s.teacher.ID, essay.ID, floatPtr(101), ErrValidation},
		{"score below range", s.teacher.ID, essay.ID, floatPtr(-1), ErrValidation},
		{"not the instructor", s.student.ID, essay.ID, floatPtr(80), ErrForbidden},
		{"mcq results are auto-scored", s.teacher.ID, quiz.ID, floatPtr(80), ErrValidation},
		{"unknown result", s.teacher.ID, 9999, floatPtr(80), ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.svc.GradeAssignment(s.ctx, tt.graderID, tt.resultID, dto.GradeAssignmentDTO{Score: tt.score})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmissionReads(t *testing.T) {
	s := newSubmissionSetup(t)
	first, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{
		AssessmentID: s.quiz.ID,
		Answers:      []dto.SubmittedAnswerDTO{{QuestionID: "q1", Answer: "4"}, {QuestionID: "q2", Answer: "Paris"}},
	})
	require.NoError(t, err)
	s.svc.now = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }
	second, err := s.svc.Submit(s.ctx, s.student.ID, dto.SubmitTestDTO{AssessmentID: s.quiz.ID})
	require.NoError(t, err)

	got, err := s.svc.GetResult(s.ctx, s.student.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Score)
	require.Len(t, got.Answers, 2)
	assert.Equal(t, "q1", got.Answers[0].QuestionID)

	_, err = s.svc.GetResult(s.ctx, s.teacher.ID, first.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.svc.GetResult(s.ctx, s.student.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.svc.ListForAssessment(s.ctx, s.student.ID, s.quiz.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	byCourse, err := s.svc.ListForUserAndCourse(s.ctx, s.student.ID, s.course.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	best, err := s.svc.BestScore(s.ctx, s.student.ID, s.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, best.ID)

	_, err = s.svc.BestScore(s.ctx, s.student.ID, s.assignment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
