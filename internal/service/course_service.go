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

type CourseService interface {
	Create(ctx context.Context, actorID string, req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error)
	Get(ctx context.Context, id uint) (*dto.CourseResponseDTO, error)
	List(ctx context.Context) ([]dto.CourseResponseDTO, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

func NewCourseService(courseRepo repository.CourseRepository, userRepo repository.UserRepository) CourseService {
	return &courseService{courseRepo: courseRepo, userRepo: userRepo}
}

// Create makes actorID the instructor of the new course. Only teachers and
// admins may create courses.
func (s *courseService) Create(ctx context.Context, actorID string, req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, fromRepository(err, "user "+actorID)
	}
	if actor.Role != model.RoleTeacher && actor.Role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: only teachers can create courses", ErrForbidden)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, newValidationError(FieldError{Field: "title", Error: requiredText})
	}

	course := &model.Course{
		Title:        title,
		Description:  req.Description,
		Category:     req.Category,
		InstructorID: actor.ID,
		Price:        req.Price,
		IsPublished:  req.IsPublished,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error saving course: %w", err)
	}
	log.Info().Uint("courseID", course.ID).Str("instructorID", actor.ID).Msg("Course created")
	return toCourseDTO(course)
}

func (s *courseService) Get(ctx context.Context, id uint) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("course %d", id))
	}
	return toCourseDTO(course)
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponseDTO, error) {
	courses, err := s.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	if err := copier.Copy(&resp, &courses); err != nil {
		return nil, fmt.Errorf("error mapping courses: %w", err)
	}
	return resp, nil
}

func toCourseDTO(course *model.Course) (*dto.CourseResponseDTO, error) {
	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, course); err != nil {
		return nil, fmt.Errorf("error mapping course %d: %w", course.ID, err)
	}
	return &resp, nil
}
