package model

import (
	"time"

	"gorm.io/datatypes"
)

// Attempt is one scored submission of a user's answers to an assessment.
// Rows are append-only; only assignment grading touches the grading columns.
type Attempt struct {
	ID           uint                                 `gorm:"primarykey" json:"id"`
	UserID       string                               `json:"user_id" gorm:"not null;index:idx_attempt_user_assessment;index:idx_attempt_user_course"`
	AssessmentID uint                                 `json:"assessment_id" gorm:"not null;index:idx_attempt_user_assessment"`
	CourseID     uint                                 `json:"course_id" gorm:"not null;index:idx_attempt_user_course"`
	Answers      datatypes.JSONSlice[SubmittedAnswer] `json:"answers"`
	Score        float64                              `json:"score" gorm:"not null;default:0"`
	Passed       bool                                 `json:"passed" gorm:"not null;default:false"`
	TimeSpent    *int                                 `json:"time_spent,omitempty"` // minutes
	AttemptDate  time.Time                            `json:"attempt_date" gorm:"not null;index"`
	GradedBy     *string                              `json:"graded_by,omitempty"`
	GradedAt     *time.Time                           `json:"graded_at,omitempty"`
	Feedback     *string                              `json:"feedback,omitempty" gorm:"type:text"`
}

// TableName keeps the collection name the platform has always used.
func (Attempt) TableName() string {
	return "test_results"
}

// Grade is the set of columns an instructor may overwrite on an assignment attempt.
type Grade struct {
	Score    float64
	Passed   bool
	GradedBy string
	GradedAt time.Time
	Feedback string
}
