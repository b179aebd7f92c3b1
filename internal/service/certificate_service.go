package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

// CertificateIssueAttempts bounds token regeneration after a collision on
// the certificate id or verification code.
const CertificateIssueAttempts = 3

const defaultInstructorName = "Instructor"

// IssueRequest carries the snapshot stored on the certificate.
type IssueRequest struct {
	UserID         string
	CourseID       uint
	CourseTitle    string
	UserName       string
	InstructorName string
}

type CertificateService interface {
	Issue(ctx context.Context, req IssueRequest) (*model.Certificate, error)
	GenerateForUser(ctx context.Context, userID string, courseID uint) (*dto.GenerateCertificateResponseDTO, error)
	CheckEligibility(ctx context.Context, userID string, courseID uint) (*dto.EligibilityDTO, error)
	Verify(ctx context.Context, certificateID, verificationCode string) (*dto.VerificationResultDTO, error)
	ListByUser(ctx context.Context, userID string) ([]dto.CertificateDTO, error)
	GetByCertificateID(ctx context.Context, certificateID string) (*dto.PublicCertificateDTO, error)
	ListAll(ctx context.Context) ([]dto.CertificateDTO, error)
}

type certificateService struct {
	certRepo   repository.CertificateRepository
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	summary    CourseSummaryService
	tokens     TokenGenerator
	now        func() time.Time
}

func NewCertificateService(
	certRepo repository.CertificateRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	summary CourseSummaryService,
	tokens TokenGenerator,
) CertificateService {
	return &certificateService{
		certRepo:   certRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		summary:    summary,
		tokens:     tokens,
		now:        time.Now,
	}
}

// Issue creates the single certificate a user may hold for a course. A
// losing concurrent issuance gets ErrAlreadyIssued, the same as a caller
// who finds the certificate up front.
func (s *certificateService) Issue(ctx context.Context, req IssueRequest) (*model.Certificate, error) {
	existing, err := s.certRepo.FindByUserAndCourse(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing certificate: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyIssued
	}

	allPassed, err := s.summary.AllPassed(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !allPassed {
		return nil, ErrNotEligible
	}

	for attempt := 1; attempt <= CertificateIssueAttempts; attempt++ {
		cert, err := s.newCertificate(req)
		if err != nil {
			return nil, err
		}

		err = s.certRepo.Create(ctx, cert)
		if err == nil {
			log.Info().
				Str("userID", req.UserID).
				Uint("courseID", req.CourseID).
				Str("certificateID", cert.CertificateID).
				Msg("Certificate issued")
			return cert, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("error saving certificate: %w", err)
		}

		existing, err := s.certRepo.FindByUserAndCourse(ctx, req.UserID, req.CourseID)
		if err != nil {
			return nil, fmt.Errorf("error re-checking certificate after conflict: %w", err)
		}
		if existing != nil {
			log.Info().Str("userID", req.UserID).Uint("courseID", req.CourseID).Msg("Issue: Lost race to a concurrent issuance")
			return nil, ErrAlreadyIssued
		}
		log.Warn().Int("attempt", attempt).Str("certificateID", cert.CertificateID).Msg("Issue: Certificate token collision, regenerating")
	}
	return nil, fmt.Errorf("could not allocate unique certificate tokens after %d attempts", CertificateIssueAttempts)
}

func (s *certificateService) newCertificate(req IssueRequest) (*model.Certificate, error) {
	issuedAt := s.now().UTC()
	certificateID, err := s.tokens.CertificateID(issuedAt)
	if err != nil {
		return nil, err
	}
	code, err := s.tokens.VerificationCode()
	if err != nil {
		return nil, err
	}
	return &model.Certificate{
		UserID:           req.UserID,
		CourseID:         req.CourseID,
		CourseTitle:      req.CourseTitle,
		UserName:         req.UserName,
		InstructorName:   req.InstructorName,
		CertificateID:    certificateID,
		VerificationCode: code,
		IssueDate:        issuedAt,
	}, nil
}

func (s *certificateService) GenerateForUser(ctx context.Context, userID string, courseID uint) (*dto.GenerateCertificateResponseDTO, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fromRepository(err, fmt.Sprintf("course %d", courseID))
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fromRepository(err, "user "+userID)
	}

	instructorName := defaultInstructorName
	instructor, err := s.userRepo.FindByID(ctx, course.InstructorID)
	switch {
	case err == nil:
		instructorName = instructor.FullName
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("error fetching course instructor: %w", err)
	}

	cert, err := s.Issue(ctx, IssueRequest{
		UserID:         user.ID,
		CourseID:       course.ID,
		CourseTitle:    course.Title,
		UserName:       user.FullName,
		InstructorName: instructorName,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.GenerateCertificateResponseDTO{Message: "Certificate generated successfully"}
	if err := copier.Copy(&resp.Certificate, cert); err != nil {
		return nil, fmt.Errorf("error mapping certificate: %w", err)
	}
	return resp, nil
}

func (s *certificateService) CheckEligibility(ctx context.Context, userID string, courseID uint) (*dto.EligibilityDTO, error) {
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, fromRepository(err, fmt.Sprintf("course %d", courseID))
	}

	existing, err := s.certRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing certificate: %w", err)
	}
	if existing != nil {
		return &dto.EligibilityDTO{
			Eligible: false,
			Reason:   dto.EligibilityReasonAlreadyIssued,
			Message:  "Certificate already issued",
		}, nil
	}

	allPassed, err := s.summary.AllPassed(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !allPassed {
		return &dto.EligibilityDTO{
			Eligible: false,
			Reason:   dto.EligibilityReasonNotEligible,
			Message:  "Complete all assessments to earn the certificate",
		}, nil
	}
	return &dto.EligibilityDTO{
		Eligible: true,
		Reason:   dto.EligibilityReasonEligible,
		Message:  "Eligible for certificate",
	}, nil
}

// Verify looks a certificate up by its id or, failing that, by its
// verification code. The certificate id wins when both are given.
func (s *certificateService) Verify(ctx context.Context, certificateID, verificationCode string) (*dto.VerificationResultDTO, error) {
	var (
		cert *model.Certificate
		err  error
	)
	switch {
	case certificateID != "":
		cert, err = s.certRepo.FindByCertificateID(ctx, certificateID)
	case verificationCode != "":
		cert, err = s.certRepo.FindByVerificationCode(ctx, verificationCode)
	default:
		return nil, newValidationError(FieldError{
			Field: "certificate_id",
			Error: "certificate_id or verification_code is required",
		})
	}
	if err != nil {
		return nil, fmt.Errorf("error verifying certificate: %w", err)
	}
	if cert == nil {
		return nil, fmt.Errorf("certificate: %w", ErrNotFound)
	}

	return &dto.VerificationResultDTO{
		Valid:         true,
		UserName:      cert.UserName,
		CourseTitle:   cert.CourseTitle,
		IssueDate:     cert.IssueDate,
		CertificateID: cert.CertificateID,
	}, nil
}

func (s *certificateService) ListByUser(ctx context.Context, userID string) ([]dto.CertificateDTO, error) {
	certs, err := s.certRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching certificates: %w", err)
	}
	return toCertificateDTOs(certs)
}

func (s *certificateService) GetByCertificateID(ctx context.Context, certificateID string) (*dto.PublicCertificateDTO, error) {
	cert, err := s.certRepo.FindByCertificateID(ctx, certificateID)
	if err != nil {
		return nil, fmt.Errorf("error fetching certificate: %w", err)
	}
	if cert == nil {
		return nil, fmt.Errorf("certificate %s: %w", certificateID, ErrNotFound)
	}
	var resp dto.PublicCertificateDTO
	if err := copier.Copy(&resp, cert); err != nil {
		return nil, fmt.Errorf("error mapping certificate: %w", err)
	}
	return &resp, nil
}

func (s *certificateService) ListAll(ctx context.Context) ([]dto.CertificateDTO, error) {
	certs, err := s.certRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching certificates: %w", err)
	}
	return toCertificateDTOs(certs)
}

func toCertificateDTOs(certs []model.Certificate) ([]dto.CertificateDTO, error) {
	resp := make([]dto.CertificateDTO, 0, len(certs))
	if err := copier.Copy(&resp, &certs); err != nil {
		return nil, fmt.Errorf("error mapping certificates: %w", err)
	}
	return resp, nil
}
