package dto

import "time"

// --- Submissions ---

type SubmittedAnswerDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     any    `json:"answer"`
}

// SubmitTestDTO is the body of a submission. The user comes from the auth token.
type SubmitTestDTO struct {
	AssessmentID uint                 `json:"assessment_id" binding:"required"`
	Answers      []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
	TimeSpent    *int                 `json:"time_spent" binding:"omitempty,gte=0"`
}

type SubmitResultDTO struct {
	ID           uint    `json:"id"`
	Score        float64 `json:"score"`
	Passed       bool    `json:"passed"`
	PassingScore float64 `json:"passing_score"`
	Message      string  `json:"message"`
}

// AttemptResponseDTO is a stored attempt as shown to its owner or instructor.
type AttemptResponseDTO struct {
	ID           uint                 `json:"id"`
	UserID       string               `json:"user_id"`
	AssessmentID uint                 `json:"assessment_id"`
	CourseID     uint                 `json:"course_id"`
	Answers      []SubmittedAnswerDTO `json:"answers" copier:"-"`
	Score        float64              `json:"score"`
	Passed       bool                 `json:"passed"`
	TimeSpent    *int                 `json:"time_spent,omitempty"`
	AttemptDate  time.Time            `json:"attempt_date"`
	GradedBy     *string              `json:"graded_by,omitempty"`
	GradedAt     *time.Time           `json:"graded_at,omitempty"`
	Feedback     *string              `json:"feedback,omitempty"`
}

// --- Grading ---

type GradeAssignmentDTO struct {
	Score    *float64 `json:"score" binding:"required"`
	Feedback string   `json:"feedback"`
}

type GradeResultDTO struct {
	Message string  `json:"message"`
	Score   float64 `json:"score"`
	Passed  bool    `json:"passed"`
}

type GradeSuggestionDTO struct {
	AttemptID      uint    `json:"attempt_id"`
	SuggestedScore float64 `json:"suggested_score"`
	Feedback       string  `json:"feedback"`
}

// --- Course summary & eligibility ---

type AssessmentSummaryDTO struct {
	AssessmentID    uint     `json:"assessment_id"`
	AssessmentTitle string   `json:"assessment_title"`
	Type            string   `json:"type"`
	PassingScore    float64  `json:"passing_score"`
	BestScore       *float64 `json:"best_score"` // null when never attempted
	Passed          bool     `json:"passed"`
	Attempts        int64    `json:"attempts"`
}

type CourseSummaryDTO struct {
	CourseID             uint                   `json:"course_id"`
	Summary              []AssessmentSummaryDTO `json:"summary"`
	TotalAssessments     int                    `json:"total_assessments"`
	PassedAssessments    int                    `json:"passed_assessments"`
	AllPassed            bool                   `json:"all_passed"`
	CompletionPercentage float64                `json:"completion_percentage"`
}

type CourseCompletionDTO struct {
	CourseID  uint `json:"course_id"`
	AllPassed bool `json:"all_passed"`
}

const (
	EligibilityReasonEligible      = "eligible"
	EligibilityReasonAlreadyIssued = "already_issued"
	EligibilityReasonNotEligible   = "not_eligible"
)

type EligibilityDTO struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
}
