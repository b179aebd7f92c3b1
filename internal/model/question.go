package model

// Question is one item of an assessment's answer key. Questions are stored
// as a JSON array on their Assessment rather than in a table of their own.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer any      `json:"correct_answer,omitempty"`
}

// SubmittedAnswer is one {question, answer} pair of a submission.
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     any    `json:"answer"`
}
