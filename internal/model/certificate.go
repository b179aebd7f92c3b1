package model

import "time"

// Certificate is issued at most once per (user, course). Course title and
// names are a snapshot taken at issuance.
type Certificate struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           string    `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID         uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseTitle      string    `json:"course_title" gorm:"not null"`
	UserName         string    `json:"user_name" gorm:"not null"`
	InstructorName   string    `json:"instructor_name" gorm:"not null"`
	CertificateID    string    `json:"certificate_id" gorm:"not null;uniqueIndex;size:32"`
	VerificationCode string    `json:"verification_code" gorm:"not null;uniqueIndex;size:12"`
	IssueDate        time.Time `json:"issue_date" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}
