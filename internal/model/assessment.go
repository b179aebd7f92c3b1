package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AssessmentTypeMCQ        = "mcq"
	AssessmentTypeAssignment = "assignment"
)

type Assessment struct {
	ID           uint                          `gorm:"primarykey" json:"id"`
	CourseID     uint                          `json:"course_id" gorm:"not null;index"`
	ModuleID     string                        `json:"module_id" gorm:"not null;index"`
	Title        string                        `json:"title" gorm:"not null"`
	Type         string                        `json:"type" gorm:"not null"` // "mcq", "assignment"
	Questions    datatypes.JSONSlice[Question] `json:"questions"`
	PassingScore float64                       `json:"passing_score" gorm:"not null"`
	TimeLimit    *int                          `json:"time_limit,omitempty"` // minutes
	Instructions *string                       `json:"instructions,omitempty" gorm:"type:text"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
	DeletedAt    gorm.DeletedAt                `gorm:"index" json:"-"`
}

func (a *Assessment) IsMCQ() bool {
	return a.Type == AssessmentTypeMCQ
}
