package repository

import (
	"context"
	"errors"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is the append-only store of scored submissions.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uint) (*model.Attempt, error)
	// Best returns nil, nil when the user never attempted the assessment.
	Best(ctx context.Context, userID string, assessmentID uint) (*model.Attempt, error)
	CountByUserAndAssessment(ctx context.Context, userID string, assessmentID uint) (int64, error)
	CountByAssessment(ctx context.Context, assessmentID uint) (int64, error)
	FindAllByUserAndAssessment(ctx context.Context, userID string, assessmentID uint) ([]model.Attempt, error)
	FindAllByUserAndCourse(ctx context.Context, userID string, courseID uint) ([]model.Attempt, error)
	UpdateGrade(ctx context.Context, id uint, grade model.Grade) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return translate(r.db.WithContext(ctx).Create(attempt).Error)
}

func (r *attemptRepository) FindByID(ctx context.Context, id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

// Best picks the highest score; equal scores resolve to the most recent
// attempt, and equal timestamps to the later insert.
func (r *attemptRepository) Best(ctx context.Context, userID string, assessmentID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("score DESC").
		Order("attempt_date DESC").
		Order("id DESC").
		Limit(1).
		Take(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) CountByUserAndAssessment(ctx context.Context, userID string, assessmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attempt{}).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) CountByAssessment(ctx context.Context, assessmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attempt{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) FindAllByUserAndAssessment(ctx context.Context, userID string, assessmentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("attempt_date DESC").
		Order("id DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByUserAndCourse(ctx context.Context, userID string, courseID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("attempt_date DESC").
		Order("id DESC").
		Find(&attempts).Error
	return attempts, err
}

// UpdateGrade writes the grading columns only.
func (r *attemptRepository) UpdateGrade(ctx context.Context, id uint, grade model.Grade) error {
	res := r.db.WithContext(ctx).
		Model(&model.Attempt{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"score":     grade.Score,
			"passed":    grade.Passed,
			"graded_by": grade.GradedBy,
			"graded_at": grade.GradedAt,
			"feedback":  grade.Feedback,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
