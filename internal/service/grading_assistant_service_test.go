package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		if txt, ok := p.(genai.Text); ok {
			g.prompt += string(txt)
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(g.reply)}},
		}},
	}, nil
}

func TestParseScoreAndFeedback(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantScore    float64
		wantFeedback string
		wantErr      bool
	}{
		{
			name:         "strict format",
			raw:          "Score: 85\nFeedback:\nClear argument, weak conclusion.",
			wantScore:    85,
			wantFeedback: "Clear argument, weak conclusion.",
		},
		{
			name:         "score out of a hundred",
			raw:          "Score: 72.5/100\nFeedback: Solid.",
			wantScore:    72.5,
			wantFeedback: "Solid.",
		},
		{
			name:         "feedback without a label",
			raw:          "Score: 60\nNeeds more examples.",
			wantScore:    60,
			wantFeedback: "Needs more examples.",
		},
		{
			name:         "feedback before score",
			raw:          "Feedback: Good use of channels.\nScore: 90",
			wantScore:    90,
			wantFeedback: "Good use of channels.",
		},
		{name: "no score line", raw: "Looks fine to me.", wantErr: true},
		{name: "score not a number", raw: "Score: excellent\nFeedback: x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback, err := parseScoreAndFeedback(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-3))
	assert.Equal(t, 100.0, clampScore(140))
	assert.Equal(t, 66.67, clampScore(66.666))
}

type assistantSetup struct {
	*fixture
	svc        *gradingAssistantService
	gen        *fakeGenerator
	teacher    *model.User
	student    *model.User
	essay      *model.Attempt
	quizResult *model.Attempt
}

func newAssistantSetup(t *testing.T) *assistantSetup {
	f := newFixture(t)
	teacher := f.user("rob", model.RoleTeacher)
	student := f.user("ada", model.RoleStudent)
	course := f.course("Go Basics", teacher)

	essay := f.attempt(student.ID, f.assignment(course, "Essay", 60), 0, time.Now().UTC())
	quizResult := f.attempt(student.ID, f.mcq(course, "Quiz", 50), 100, time.Now().UTC())

	gen := &fakeGenerator{}
	svc := &gradingAssistantService{
		model:          gen,
		attemptRepo:    f.attempts,
		assessmentRepo: f.assessments,
		courseRepo:     f.courses,
	}
	return &assistantSetup{fixture: f, svc: svc, gen: gen, teacher: teacher, student: student, essay: essay, quizResult: quizResult}
}

func TestSuggestGrade(t *testing.T) {
	s := newAssistantSetup(t)
	s.gen.reply = "Score: 120\nFeedback:\nThorough and accurate."

	got, err := s.svc.SuggestGrade(s.ctx, s.teacher.ID, s.essay.ID)
	require.NoError(t, err)
	assert.Equal(t, s.essay.ID, got.AttemptID)
	assert.Equal(t, 100.0, got.SuggestedScore, "clamped")
	assert.Equal(t, "Thorough and accurate.", got.Feedback)
	assert.Contains(t, s.gen.prompt, "Write a short essay about goroutines.")
	assert.Contains(t, s.gen.prompt, "Explain goroutines.")

	stored, err := s.attempts.FindByID(s.ctx, s.essay.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Score, "suggestions are never written")
}

func TestSuggestGradeRejections(t *testing.T) {
	s := newAssistantSetup(t)
	s.gen.reply = "Score: 50\nFeedback: ok"

	_, err := s.svc.SuggestGrade(s.ctx, s.student.ID, s.essay.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.svc.SuggestGrade(s.ctx, s.teacher.ID, s.quizResult.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.svc.SuggestGrade(s.ctx, s.teacher.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	s.gen.err = errors.New("quota exceeded")
	_, err = s.svc.SuggestGrade(s.ctx, s.teacher.ID, s.essay.ID)
	assert.Error(t, err)

	s.gen.err = nil
	s.gen.reply = "I cannot grade this."
	_, err = s.svc.SuggestGrade(s.ctx, s.teacher.ID, s.essay.ID)
	assert.Error(t, err)
}

func TestSuggestGradeUnavailableWithoutKey(t *testing.T) {
	s := newAssistantSetup(t)
	s.svc.model = nil

	_, err := s.svc.SuggestGrade(s.ctx, s.teacher.ID, s.essay.ID)
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
}
