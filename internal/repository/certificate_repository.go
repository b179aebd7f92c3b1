package repository

import (
	"context"
	"errors"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	// Create returns ErrDuplicate when any unique index is violated: the
	// (user, course) pair, the certificate id or the verification code.
	Create(ctx context.Context, certificate *model.Certificate) error
	FindByUserAndCourse(ctx context.Context, userID string, courseID uint) (*model.Certificate, error)
	FindByCertificateID(ctx context.Context, certificateID string) (*model.Certificate, error)
	FindByVerificationCode(ctx context.Context, code string) (*model.Certificate, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Certificate, error)
	FindAll(ctx context.Context) ([]model.Certificate, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *model.Certificate) error {
	return translate(r.db.WithContext(ctx).Create(certificate).Error)
}

func (r *certificateRepository) FindByUserAndCourse(ctx context.Context, userID string, courseID uint) (*model.Certificate, error) {
	return r.findOne(ctx, "user_id = ? AND course_id = ?", userID, courseID)
}

func (r *certificateRepository) FindByCertificateID(ctx context.Context, certificateID string) (*model.Certificate, error) {
	return r.findOne(ctx, "certificate_id = ?", certificateID)
}

func (r *certificateRepository) FindByVerificationCode(ctx context.Context, code string) (*model.Certificate, error) {
	return r.findOne(ctx, "verification_code = ?", code)
}

func (r *certificateRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issue_date DESC").
		Find(&certificates).Error
	return certificates, err
}

func (r *certificateRepository) FindAll(ctx context.Context) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.db.WithContext(ctx).Order("issue_date DESC").Find(&certificates).Error
	return certificates, err
}

// findOne returns nil, nil on a miss.
func (r *certificateRepository) findOne(ctx context.Context, query string, args ...any) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.db.WithContext(ctx).Where(query, args...).Take(&certificate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}
