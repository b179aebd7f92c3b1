package dto

import "time"

// Assessment payloads are validated by the service layer (`validate` tags),
// not at binding time, so every transport gets the same rules.

type QuestionDTO struct {
	ID            string   `json:"id" validate:"required,max=64"`
	Prompt        string   `json:"prompt" validate:"required"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer any      `json:"correct_answer,omitempty"`
}

type AssessmentCreateDTO struct {
	CourseID     uint          `json:"course_id" validate:"required"`
	ModuleID     string        `json:"module_id" validate:"required,max=64"`
	Title        string        `json:"title" validate:"required,max=200"`
	Type         string        `json:"type" validate:"required,oneof=mcq assignment"`
	Questions    []QuestionDTO `json:"questions" validate:"dive"`
	PassingScore *float64      `json:"passing_score" validate:"required,gte=0,lte=100"`
	TimeLimit    *int          `json:"time_limit,omitempty" validate:"omitempty,gt=0"`
	Instructions *string       `json:"instructions,omitempty"`
}

// AssessmentUpdateDTO is a partial update; nil fields are left unchanged.
type AssessmentUpdateDTO struct {
	Title        *string        `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Questions    *[]QuestionDTO `json:"questions,omitempty" validate:"omitempty,dive"`
	PassingScore *float64       `json:"passing_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	TimeLimit    *int           `json:"time_limit,omitempty" validate:"omitempty,gt=0"`
	Instructions *string        `json:"instructions,omitempty"`
}

type AssessmentResponseDTO struct {
	ID           uint          `json:"id"`
	CourseID     uint          `json:"course_id"`
	ModuleID     string        `json:"module_id"`
	Title        string        `json:"title"`
	Type         string        `json:"type"`
	Questions    []QuestionDTO `json:"questions" copier:"-"`
	PassingScore float64       `json:"passing_score"`
	TimeLimit    *int          `json:"time_limit,omitempty"`
	Instructions *string       `json:"instructions,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
