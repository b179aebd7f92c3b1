package service

import (
	"context"
	"fmt"

	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

// CourseSummaryService aggregates a user's best attempts per assessment of a
// course. It only reads, so repeated and concurrent calls are safe.
type CourseSummaryService interface {
	Summarize(ctx context.Context, userID string, courseID uint) (*dto.CourseSummaryDTO, error)
	AllPassed(ctx context.Context, userID string, courseID uint) (bool, error)
}

type courseSummaryService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
}

func NewCourseSummaryService(assessmentRepo repository.AssessmentRepository, attemptRepo repository.AttemptRepository) CourseSummaryService {
	return &courseSummaryService{assessmentRepo: assessmentRepo, attemptRepo: attemptRepo}
}

func (s *courseSummaryService) Summarize(ctx context.Context, userID string, courseID uint) (*dto.CourseSummaryDTO, error) {
	assessments, err := s.assessmentRepo.FindByCourse(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Summarize: Failed to list course assessments")
		return nil, fmt.Errorf("error fetching assessments for course %d: %w", courseID, err)
	}

	// A course without assessments is certifiable.
	summary := &dto.CourseSummaryDTO{
		CourseID:  courseID,
		Summary:   make([]dto.AssessmentSummaryDTO, 0, len(assessments)),
		AllPassed: true,
	}

	for _, a := range assessments {
		best, err := s.attemptRepo.Best(ctx, userID, a.ID)
		if err != nil {
			return nil, fmt.Errorf("error fetching best attempt for assessment %d: %w", a.ID, err)
		}
		count, err := s.attemptRepo.CountByUserAndAssessment(ctx, userID, a.ID)
		if err != nil {
			return nil, fmt.Errorf("error counting attempts for assessment %d: %w", a.ID, err)
		}

		entry := dto.AssessmentSummaryDTO{
			AssessmentID:    a.ID,
			AssessmentTitle: a.Title,
			Type:            a.Type,
			PassingScore:    a.PassingScore,
			Attempts:        count,
		}
		if best != nil {
			score := best.Score
			entry.BestScore = &score
			entry.Passed = best.Passed
		}
		if entry.Passed {
			summary.PassedAssessments++
		} else {
			summary.AllPassed = false
		}
		summary.Summary = append(summary.Summary, entry)
	}

	summary.TotalAssessments = len(assessments)
	if summary.TotalAssessments > 0 {
		summary.CompletionPercentage = roundScore(100 * float64(summary.PassedAssessments) / float64(summary.TotalAssessments))
	}
	return summary, nil
}

func (s *courseSummaryService) AllPassed(ctx context.Context, userID string, courseID uint) (bool, error) {
	summary, err := s.Summarize(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	return summary.AllPassed, nil
}
