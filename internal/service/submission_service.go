package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService records attempts and lets instructors grade assignments.
type SubmissionService interface {
	Submit(ctx context.Context, userID string, req dto.SubmitTestDTO) (*dto.SubmitResultDTO, error)
	GradeAssignment(ctx context.Context, graderID string, resultID uint, req dto.GradeAssignmentDTO) (*dto.GradeResultDTO, error)
	GetResult(ctx context.Context, userID string, resultID uint) (*dto.AttemptResponseDTO, error)
	ListForUserAndCourse(ctx context.Context, userID string, courseID uint) ([]dto.AttemptResponseDTO, error)
	ListForAssessment(ctx context.Context, userID string, assessmentID uint) ([]dto.AttemptResponseDTO, error)
	BestScore(ctx context.Context, userID string, assessmentID uint) (*dto.AttemptResponseDTO, error)
}

type submissionService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
	courseRepo     repository.CourseRepository
	scorer         AnswerKeyScorer
	now            func() time.Time
}

func NewSubmissionService(
	assessmentRepo repository.AssessmentRepository,
	attemptRepo repository.AttemptRepository,
	courseRepo repository.CourseRepository,
	scorer AnswerKeyScorer,
) SubmissionService {
	return &submissionService{
		assessmentRepo: assessmentRepo,
		attemptRepo:    attemptRepo,
		courseRepo:     courseRepo,
		scorer:         scorer,
		now:            time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, userID string, req dto.SubmitTestDTO) (*dto.SubmitResultDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(ctx, req.AssessmentID)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("assessment %d", req.AssessmentID))
	}

	answers := make([]model.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, model.SubmittedAnswer{QuestionID: strings.TrimSpace(a.QuestionID), Answer: a.Answer})
	}

	// Assignments start at 0 and wait for an instructor's grade.
	var (
		score  float64
		passed bool
	)
	if assessment.IsMCQ() {
		score, passed = s.scorer.Score(assessment.Questions, answers, assessment.PassingScore)
	}

	attempt := &model.Attempt{
		UserID:       userID,
		AssessmentID: assessment.ID,
		CourseID:     assessment.CourseID,
		Answers:      answers,
		Score:        score,
		Passed:       passed,
		TimeSpent:    req.TimeSpent,
		AttemptDate:  s.now().UTC(),
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("assessmentID", assessment.ID).Msg("Submit: Failed to save attempt")
		return nil, fmt.Errorf("error saving attempt: %w", err)
	}
	log.Info().
		Str("userID", userID).
		Uint("assessmentID", assessment.ID).
		Uint("attemptID", attempt.ID).
		Float64("score", score).
		Bool("passed", passed).
		Msg("Attempt recorded")

	return &dto.SubmitResultDTO{
		ID:           attempt.ID,
		Score:        attempt.Score,
		Passed:       attempt.Passed,
		PassingScore: assessment.PassingScore,
		Message:      submitMessage(assessment, passed),
	}, nil
}

func submitMessage(assessment *model.Assessment, passed bool) string {
	switch {
	case !assessment.IsMCQ():
		return "Assignment submitted for grading"
	case passed:
		return "Congratulations! You passed."
	default:
		return "Keep trying! You can retake this assessment."
	}
}

func (s *submissionService) GradeAssignment(ctx context.Context, graderID string, resultID uint, req dto.GradeAssignmentDTO) (*dto.GradeResultDTO, error) {
	if req.Score == nil {
		return nil, newValidationError(FieldError{Field: "score", Error: requiredText})
	}
	if *req.Score < MinPassingScore || *req.Score > MaxPassingScore {
		return nil, newValidationError(FieldError{Field: "score", Error: "score must be between 0 and 100"})
	}

	attempt, assessment, err := loadAttemptForInstructor(ctx, s.attemptRepo, s.assessmentRepo, s.courseRepo, graderID, resultID)
	if err != nil {
		return nil, err
	}
	if assessment.IsMCQ() {
		return nil, newValidationError(FieldError{Field: "result_id", Error: "only assignment results can be graded manually"})
	}

	score := roundScore(*req.Score)
	grade := model.Grade{
		Score:    score,
		Passed:   score >= assessment.PassingScore,
		GradedBy: graderID,
		GradedAt: s.now().UTC(),
		Feedback: req.Feedback,
	}
	if err := s.attemptRepo.UpdateGrade(ctx, attempt.ID, grade); err != nil {
		return nil, fromRepository(err, fmt.Sprintf("test result %d", resultID))
	}
	log.Info().Uint("attemptID", attempt.ID).Str("graderID", graderID).Float64("score", score).Msg("Assignment graded")

	return &dto.GradeResultDTO{
		Message: "Assignment graded successfully",
		Score:   grade.Score,
		Passed:  grade.Passed,
	}, nil
}

// loadAttemptForInstructor fetches an attempt with its assessment and checks
// that instructorID teaches the course.
func loadAttemptForInstructor(
	ctx context.Context,
	attemptRepo repository.AttemptRepository,
	assessmentRepo repository.AssessmentRepository,
	courseRepo repository.CourseRepository,
	instructorID string,
	resultID uint,
) (*model.Attempt, *model.Assessment, error) {
	attempt, err := attemptRepo.FindByID(ctx, resultID)
	if err != nil {
		return nil, nil, fromRepository(err, fmt.Sprintf("test result %d", resultID))
	}
	assessment, err := assessmentRepo.FindByID(ctx, attempt.AssessmentID)
	if err != nil {
		return nil, nil, fromRepository(err, fmt.Sprintf("assessment %d", attempt.AssessmentID))
	}
	course, err := courseRepo.FindByID(ctx, assessment.CourseID)
	if err != nil {
		return nil, nil, fromRepository(err, fmt.Sprintf("course %d", assessment.CourseID))
	}
	if course.InstructorID != instructorID {
		return nil, nil, fmt.Errorf("%w: only the course instructor can grade its results", ErrForbidden)
	}
	return attempt, assessment, nil
}

func (s *submissionService) GetResult(ctx context.Context, userID string, resultID uint) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, resultID)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("test result %d", resultID))
	}
	if attempt.UserID != userID {
		return nil, fmt.Errorf("%w: test result belongs to another user", ErrForbidden)
	}
	return toAttemptDTO(attempt)
}

func (s *submissionService) ListForUserAndCourse(ctx context.Context, userID string, courseID uint) ([]dto.AttemptResponseDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for course %d: %w", courseID, err)
	}
	return toAttemptDTOs(attempts)
}

func (s *submissionService) ListForAssessment(ctx context.Context, userID string, assessmentID uint) ([]dto.AttemptResponseDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndAssessment(ctx, userID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for assessment %d: %w", assessmentID, err)
	}
	return toAttemptDTOs(attempts)
}

func (s *submissionService) BestScore(ctx context.Context, userID string, assessmentID uint) (*dto.AttemptResponseDTO, error) {
	best, err := s.attemptRepo.Best(ctx, userID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching best result for assessment %d: %w", assessmentID, err)
	}
	if best == nil {
		return nil, fmt.Errorf("no attempts for assessment %d: %w", assessmentID, ErrNotFound)
	}
	return toAttemptDTO(best)
}

func toAttemptDTO(a *model.Attempt) (*dto.AttemptResponseDTO, error) {
	var resp dto.AttemptResponseDTO
	if err := copier.Copy(&resp, a); err != nil {
		return nil, fmt.Errorf("error mapping attempt %d: %w", a.ID, err)
	}
	resp.Answers = make([]dto.SubmittedAnswerDTO, 0, len(a.Answers))
	for _, ans := range a.Answers {
		resp.Answers = append(resp.Answers, dto.SubmittedAnswerDTO{QuestionID: ans.QuestionID, Answer: ans.Answer})
	}
	return &resp, nil
}

func toAttemptDTOs(attempts []model.Attempt) ([]dto.AttemptResponseDTO, error) {
	resp := make([]dto.AttemptResponseDTO, 0, len(attempts))
	for i := range attempts {
		d, err := toAttemptDTO(&attempts[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *d)
	}
	return resp, nil
}
