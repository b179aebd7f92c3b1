package repository

import (
	"context"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	FindByID(ctx context.Context, id uint) (*model.Assessment, error)
	FindByCourse(ctx context.Context, courseID uint) ([]model.Assessment, error)
	FindByModule(ctx context.Context, courseID uint, moduleID string) ([]model.Assessment, error)
	FindAll(ctx context.Context) ([]model.Assessment, error)
	Update(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id uint) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	return translate(r.db.WithContext(ctx).Create(assessment).Error)
}

func (r *assessmentRepository) FindByID(ctx context.Context, id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.WithContext(ctx).First(&assessment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &assessment, nil
}

// FindByCourse lists in creation order so summaries are stable between calls.
func (r *assessmentRepository) FindByCourse(ctx context.Context, courseID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindByModule(ctx context.Context, courseID uint, moduleID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND module_id = ?", courseID, moduleID).
		Order("id ASC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindAll(ctx context.Context) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) error {
	return translate(r.db.WithContext(ctx).Save(assessment).Error)
}

// Delete is a soft delete; attempts referencing the assessment are kept.
func (r *assessmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Assessment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
