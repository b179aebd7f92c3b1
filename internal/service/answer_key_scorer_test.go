package service

import (
	"testing"

	"github.com/lshigami/edulearn/internal/model"
	"github.com/stretchr/testify/assert"
)

func twoQuestionKey() []model.Question {
	return []model.Question{
		{ID: "q1", Prompt: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
		{ID: "q2", Prompt: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectAnswer: "Paris"},
	}
}

func TestAnswerKeyScorer(t *testing.T) {
	scorer := NewAnswerKeyScorer()

	tests := []struct {
		name       string
		questions  []model.Question
		answers    []model.SubmittedAnswer
		threshold  float64
		wantScore  float64
		wantPassed bool
	}{
		{
			name:       "half right at threshold passes",
			questions:  twoQuestionKey(),
			answers:    []model.SubmittedAnswer{{QuestionID: "q1", Answer: "4"}, {QuestionID: "q2", Answer: "Rome"}},
			threshold:  50,
			wantScore:  50,
			wantPassed: true,
		},
		{
			name:      "no answers",
			questions: twoQuestionKey(),
			answers:   nil,
			threshold: 50,
			wantScore: 0,
		},
		{
			name:      "unknown question ids are ignored",
			questions: twoQuestionKey(),
			answers: []model.SubmittedAnswer{
				{QuestionID: "q1", Answer: "4"},
				{QuestionID: "q9", Answer: "4"},
				{QuestionID: "q10", Answer: "Paris"},
			},
			threshold: 60,
			wantScore: 50,
		},
		{
			name:      "empty answer key never passes",
			questions: nil,
			answers:   []model.SubmittedAnswer{{QuestionID: "q1", Answer: "4"}},
			threshold: 0,
			wantScore: 0,
		},
		{
			name:       "all correct",
			questions:  twoQuestionKey(),
			answers:    []model.SubmittedAnswer{{QuestionID: "q2", Answer: "Paris"}, {QuestionID: "q1", Answer: "4"}},
			threshold:  100,
			wantScore:  100,
			wantPassed: true,
		},
		{
			name: "rounded to two decimals",
			questions: []model.Question{
				{ID: "a", CorrectAnswer: "x"},
				{ID: "b", CorrectAnswer: "x"},
				{ID: "c", CorrectAnswer: "x"},
			},
			answers:    []model.SubmittedAnswer{{QuestionID: "a", Answer: "x"}},
			threshold:  33,
			wantScore:  33.33,
			wantPassed: true,
		},
		{
			name:      "types must match exactly",
			questions: []model.Question{{ID: "n", CorrectAnswer: float64(1)}},
			answers:   []model.SubmittedAnswer{{QuestionID: "n", Answer: "1"}},
			threshold: 50,
			wantScore: 0,
		},
		{
			name:      "missing correct answer never matches",
			questions: []model.Question{{ID: "n"}},
			answers:   []model.SubmittedAnswer{{QuestionID: "n", Answer: nil}},
			threshold: 0,
			wantScore: 0,
			// 0 >= 0
			wantPassed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, passed := scorer.Score(tt.questions, tt.answers, tt.threshold)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantPassed, passed)
		})
	}
}

func TestAnswerKeyScorerRangeAndPassRule(t *testing.T) {
	scorer := NewAnswerKeyScorer()
	questions := []model.Question{
		{ID: "1", CorrectAnswer: "a"},
		{ID: "2", CorrectAnswer: "b"},
		{ID: "3", CorrectAnswer: "c"},
		{ID: "4", CorrectAnswer: "d"},
	}
	all := []model.SubmittedAnswer{
		{QuestionID: "1", Answer: "a"},
		{QuestionID: "2", Answer: "b"},
		{QuestionID: "3", Answer: "c"},
		{QuestionID: "4", Answer: "d"},
	}

	for n := 0; n <= len(all); n++ {
		for _, threshold := range []float64{0, 25, 50, 70, 100} {
			score, passed := scorer.Score(questions, all[:n], threshold)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
			assert.Equal(t, score >= threshold, passed, "n=%d threshold=%v", n, threshold)
		}
	}
}

func TestAnswerKeyScorerDuplicateAnswersLastWins(t *testing.T) {
	scorer := NewAnswerKeyScorer()
	questions := []model.Question{{ID: "q1", CorrectAnswer: "A"}, {ID: "q2", CorrectAnswer: "B"}}

	score, _ := scorer.Score(questions, []model.SubmittedAnswer{
		{QuestionID: "q1", Answer: "A"},
		{QuestionID: "q1", Answer: "C"},
	}, 50)

	assert.Equal(t, 0.0, score)
}
