package service

import (
	"math"
	"reflect"

	"github.com/lshigami/edulearn/internal/model"
)

const (
	MinPassingScore float64 = 0.0
	MaxPassingScore float64 = 100.0
)

// AnswerKeyScorer grades multiple-choice submissions against an answer key.
type AnswerKeyScorer interface {
	Score(questions []model.Question, answers []model.SubmittedAnswer, passingScore float64) (score float64, passed bool)
}

type answerKeyScorer struct{}

func NewAnswerKeyScorer() AnswerKeyScorer {
	return &answerKeyScorer{}
}

// Score returns the percentage of questions answered correctly, rounded to
// two decimals. Answers to unknown question ids are ignored; the denominator
// is always the number of questions. An empty answer key never passes.
func (s *answerKeyScorer) Score(questions []model.Question, answers []model.SubmittedAnswer, passingScore float64) (float64, bool) {
	if len(questions) == 0 {
		return 0, false
	}

	// A question answered twice keeps the last answer.
	given := make(map[string]any, len(answers))
	for _, a := range answers {
		given[a.QuestionID] = a.Answer
	}

	correct := 0
	for _, q := range questions {
		got, ok := given[q.ID]
		if ok && answersEqual(got, q.CorrectAnswer) {
			correct++
		}
	}

	score := roundScore(100 * float64(correct) / float64(len(questions)))
	return score, score >= passingScore
}

// answersEqual compares decoded JSON values exactly: 1 and "1" differ, and
// a missing correct answer never matches.
func answersEqual(got, want any) bool {
	if want == nil {
		return false
	}
	return reflect.DeepEqual(got, want)
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
