package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

type AssessmentService interface {
	Create(ctx context.Context, actorID string, req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error)
	Update(ctx context.Context, actorID string, id uint, req dto.AssessmentUpdateDTO) (*dto.AssessmentResponseDTO, error)
	Delete(ctx context.Context, actorID string, id uint) error
	// Get, ListByCourse and ListByModule are public and never expose correct answers.
	Get(ctx context.Context, id uint) (*dto.AssessmentResponseDTO, error)
	ListByCourse(ctx context.Context, courseID uint) ([]dto.AssessmentResponseDTO, error)
	ListByModule(ctx context.Context, courseID uint, moduleID string) ([]dto.AssessmentResponseDTO, error)
	// ListAll is the admin listing and includes the answer keys.
	ListAll(ctx context.Context) ([]dto.AssessmentResponseDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	courseRepo     repository.CourseRepository
	attemptRepo    repository.AttemptRepository
	validator      *structValidator
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	courseRepo repository.CourseRepository,
	attemptRepo repository.AttemptRepository,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		courseRepo:     courseRepo,
		attemptRepo:    attemptRepo,
		validator:      newStructValidator(),
	}
}

func (s *assessmentService) Create(ctx context.Context, actorID string, req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validateQuestions(req.Type, req.Questions); err != nil {
		return nil, err
	}
	if err := s.authorizeCourse(ctx, actorID, req.CourseID); err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		CourseID:     req.CourseID,
		ModuleID:     strings.TrimSpace(req.ModuleID),
		Title:        strings.TrimSpace(req.Title),
		Type:         req.Type,
		Questions:    toQuestionModels(req.Questions),
		PassingScore: *req.PassingScore,
		TimeLimit:    req.TimeLimit,
		Instructions: req.Instructions,
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Create assessment: Failed to save")
		return nil, fmt.Errorf("error saving assessment: %w", err)
	}
	log.Info().Uint("assessmentID", assessment.ID).Uint("courseID", assessment.CourseID).Str("type", assessment.Type).Msg("Assessment created")
	return toAssessmentDTO(assessment, true)
}

func (s *assessmentService) Update(ctx context.Context, actorID string, id uint, req dto.AssessmentUpdateDTO) (*dto.AssessmentResponseDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	assessment, err := s.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("assessment %d", id))
	}
	if err := s.authorizeCourse(ctx, actorID, assessment.CourseID); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		if err := validateQuestions(assessment.Type, *req.Questions); err != nil {
			return nil, err
		}
		// Stored attempts were scored against the current key.
		count, err := s.attemptRepo.CountByAssessment(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("error counting attempts for assessment %d: %w", id, err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: questions cannot be replaced once the assessment has attempts", ErrConflict)
		}
		assessment.Questions = toQuestionModels(*req.Questions)
	}
	if req.Title != nil {
		assessment.Title = strings.TrimSpace(*req.Title)
	}
	if req.PassingScore != nil {
		assessment.PassingScore = *req.PassingScore
	}
	if req.TimeLimit != nil {
		assessment.TimeLimit = req.TimeLimit
	}
	if req.Instructions != nil {
		assessment.Instructions = req.Instructions
	}

	if err := s.assessmentRepo.Update(ctx, assessment); err != nil {
		return nil, fmt.Errorf("error updating assessment %d: %w", id, err)
	}
	return toAssessmentDTO(assessment, true)
}

func (s *assessmentService) Delete(ctx context.Context, actorID string, id uint) error {
	assessment, err := s.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		return fromRepository(err, fmt.Sprintf("assessment %d", id))
	}
	if err := s.authorizeCourse(ctx, actorID, assessment.CourseID); err != nil {
		return err
	}
	if err := s.assessmentRepo.Delete(ctx, id); err != nil {
		return fromRepository(err, fmt.Sprintf("assessment %d", id))
	}
	log.Info().Uint("assessmentID", id).Str("actorID", actorID).Msg("Assessment deleted")
	return nil
}

func (s *assessmentService) Get(ctx context.Context, id uint) (*dto.AssessmentResponseDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("assessment %d", id))
	}
	return toAssessmentDTO(assessment, false)
}

func (s *assessmentService) ListByCourse(ctx context.Context, courseID uint) ([]dto.AssessmentResponseDTO, error) {
	assessments, err := s.assessmentRepo.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching assessments for course %d: %w", courseID, err)
	}
	return toAssessmentDTOs(assessments, false)
}

func (s *assessmentService) ListByModule(ctx context.Context, courseID uint, moduleID string) ([]dto.AssessmentResponseDTO, error) {
	assessments, err := s.assessmentRepo.FindByModule(ctx, courseID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching assessments for module %s: %w", moduleID, err)
	}
	return toAssessmentDTOs(assessments, false)
}

func (s *assessmentService) ListAll(ctx context.Context) ([]dto.AssessmentResponseDTO, error) {
	assessments, err := s.assessmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}
	return toAssessmentDTOs(assessments, true)
}

// authorizeCourse requires actorID to be the instructor of the course.
func (s *assessmentService) authorizeCourse(ctx context.Context, actorID string, courseID uint) error {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return fromRepository(err, fmt.Sprintf("course %d", courseID))
	}
	if course.InstructorID != actorID {
		log.Warn().Str("actorID", actorID).Uint("courseID", courseID).Msg("Assessment change refused: not the course instructor")
		return fmt.Errorf("%w: only the course instructor can manage its assessments", ErrForbidden)
	}
	return nil
}

// validateQuestions checks what struct tags cannot express: ids unique
// within the assessment and an answer key on every mcq question.
func validateQuestions(assessmentType string, questions []dto.QuestionDTO) error {
	var fields []FieldError
	if assessmentType == model.AssessmentTypeMCQ && len(questions) == 0 {
		fields = append(fields, FieldError{Field: "questions", Error: "an mcq assessment needs at least one question"})
	}
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		id := strings.TrimSpace(q.ID)
		if id == "" {
			fields = append(fields, FieldError{Field: fmt.Sprintf("questions[%d].id", i), Error: requiredText})
			continue
		}
		if seen[id] {
			fields = append(fields, FieldError{Field: fmt.Sprintf("questions[%d].id", i), Error: "duplicate question id " + id})
		}
		seen[id] = true
		if assessmentType == model.AssessmentTypeMCQ && q.CorrectAnswer == nil {
			fields = append(fields, FieldError{Field: fmt.Sprintf("questions[%d].correct_answer", i), Error: requiredText})
		}
	}
	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func toQuestionModels(questions []dto.QuestionDTO) []model.Question {
	out := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, model.Question{
			ID:            strings.TrimSpace(q.ID),
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out
}

func toAssessmentDTO(a *model.Assessment, withAnswers bool) (*dto.AssessmentResponseDTO, error) {
	var resp dto.AssessmentResponseDTO
	if err := copier.Copy(&resp, a); err != nil {
		return nil, fmt.Errorf("error mapping assessment %d: %w", a.ID, err)
	}
	resp.Questions = make([]dto.QuestionDTO, 0, len(a.Questions))
	for _, q := range a.Questions {
		qd := dto.QuestionDTO{ID: q.ID, Prompt: q.Prompt, Options: q.Options}
		if withAnswers {
			qd.CorrectAnswer = q.CorrectAnswer
		}
		resp.Questions = append(resp.Questions, qd)
	}
	return &resp, nil
}

func toAssessmentDTOs(assessments []model.Assessment, withAnswers bool) ([]dto.AssessmentResponseDTO, error) {
	resp := make([]dto.AssessmentResponseDTO, 0, len(assessments))
	for i := range assessments {
		d, err := toAssessmentDTO(&assessments[i], withAnswers)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *d)
	}
	return resp, nil
}
