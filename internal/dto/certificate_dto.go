package dto

import "time"

type GenerateCertificateDTO struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// CertificateDTO is the owner's view, including the verification code.
type CertificateDTO struct {
	ID               uint      `json:"id"`
	UserID           string    `json:"user_id"`
	CourseID         uint      `json:"course_id"`
	CourseTitle      string    `json:"course_title"`
	UserName         string    `json:"user_name"`
	InstructorName   string    `json:"instructor_name"`
	CertificateID    string    `json:"certificate_id"`
	VerificationCode string    `json:"verification_code"`
	IssueDate        time.Time `json:"issue_date"`
}

// PublicCertificateDTO is served without authentication and so omits the
// verification code and the internal id.
type PublicCertificateDTO struct {
	CertificateID  string    `json:"certificate_id"`
	CourseTitle    string    `json:"course_title"`
	UserName       string    `json:"user_name"`
	InstructorName string    `json:"instructor_name"`
	IssueDate      time.Time `json:"issue_date"`
}

type GenerateCertificateResponseDTO struct {
	Certificate CertificateDTO `json:"certificate"`
	Message     string         `json:"message"`
}

type VerifyCertificateDTO struct {
	CertificateID    string `json:"certificate_id"`
	VerificationCode string `json:"verification_code"`
}

// VerificationResultDTO has exactly these five fields whichever identifier
// was used for the lookup.
type VerificationResultDTO struct {
	Valid         bool      `json:"valid"`
	UserName      string    `json:"user_name"`
	CourseTitle   string    `json:"course_title"`
	IssueDate     time.Time `json:"issue_date"`
	CertificateID string    `json:"certificate_id"`
}
