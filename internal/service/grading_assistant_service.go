package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// GradingAssistantService asks Gemini for a suggested grade on an
// assignment attempt. It never writes the attempt.
type GradingAssistantService interface {
	SuggestGrade(ctx context.Context, graderID string, resultID uint) (*dto.GradeSuggestionDTO, error)
}

// contentGenerator is the part of *genai.GenerativeModel the assistant uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type gradingAssistantService struct {
	model          contentGenerator
	attemptRepo    repository.AttemptRepository
	assessmentRepo repository.AssessmentRepository
	courseRepo     repository.CourseRepository
}

func NewGradingAssistantService(
	lc fx.Lifecycle,
	cfg *config.Config,
	attemptRepo repository.AttemptRepository,
	assessmentRepo repository.AssessmentRepository,
	courseRepo repository.CourseRepository,
) (GradingAssistantService, error) {
	svc := &gradingAssistantService{
		attemptRepo:    attemptRepo,
		assessmentRepo: assessmentRepo,
		courseRepo:     courseRepo,
	}
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Grading suggestions are disabled.")
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	gm := client.GenerativeModel(cfg.GeminiModel)
	gm.SetTemperature(0.2)
	svc.model = gm
	return svc, nil
}

func (s *gradingAssistantService) SuggestGrade(ctx context.Context, graderID string, resultID uint) (*dto.GradeSuggestionDTO, error) {
	if s.model == nil {
		return nil, ErrAssistantUnavailable
	}

	attempt, assessment, err := loadAttemptForInstructor(ctx, s.attemptRepo, s.assessmentRepo, s.courseRepo, graderID, resultID)
	if err != nil {
		return nil, err
	}
	if assessment.IsMCQ() {
		return nil, newValidationError(FieldError{Field: "result_id", Error: "grading suggestions are only available for assignments"})
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildGradingPrompt(assessment, attempt)))
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Gemini API error during grading suggestion")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	score, feedback, err := parseScoreAndFeedback(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse score and feedback from Gemini response")
		return nil, err
	}

	return &dto.GradeSuggestionDTO{
		AttemptID:      attempt.ID,
		SuggestedScore: clampScore(score),
		Feedback:       feedback,
	}, nil
}

func buildGradingPrompt(assessment *model.Assessment, attempt *model.Attempt) string {
	var b strings.Builder
	b.WriteString("You are an experienced course instructor grading a student's assignment.\n")
	fmt.Fprintf(&b, "Assignment: %s\n", assessment.Title)
	if assessment.Instructions != nil && *assessment.Instructions != "" {
		b.WriteString("Instructions:\n---\n")
		b.WriteString(*assessment.Instructions)
		b.WriteString("\n---\n")
	}

	answers := make(map[string]any, len(attempt.Answers))
	for _, a := range attempt.Answers {
		answers[a.QuestionID] = a.Answer
	}
	for i, q := range assessment.Questions {
		fmt.Fprintf(&b, "\nQuestion %d: %s\n", i+1, q.Prompt)
		if ans, ok := answers[q.ID]; ok && ans != nil {
			fmt.Fprintf(&b, "Student's answer:\n---\n%v\n---\n", ans)
		} else {
			b.WriteString("Student's answer: (no answer)\n")
		}
	}

	fmt.Fprintf(&b, `
Grade the submission from 0 to 100. The passing score is %.0f.
Point out strengths, specific mistakes and how to improve.

Format your response strictly as:
Score: [number]
Feedback:
[your feedback]
`, assessment.PassingScore)
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

const (
	scorePrefix    = "Score:"
	feedbackPrefix = "Feedback:"
)

// parseScoreAndFeedback reads "Score: <n>" and the text after "Feedback:".
// Scores written as "85/100" are accepted.
func parseScoreAndFeedback(raw string) (float64, string, error) {
	at := strings.Index(raw, scorePrefix)
	if at == -1 {
		return 0, "", fmt.Errorf("response does not contain %q", scorePrefix)
	}
	line, rest, _ := strings.Cut(raw[at+len(scorePrefix):], "\n")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("response has an empty score line")
	}
	numeric, _, _ := strings.Cut(fields[0], "/")
	score, err := strconv.ParseFloat(strings.TrimRight(numeric, ".,;"), 64)
	if err != nil {
		return 0, "", fmt.Errorf("could not parse score value %q: %w", fields[0], err)
	}

	feedback := rest
	if i := strings.Index(rest, feedbackPrefix); i >= 0 {
		feedback = rest[i+len(feedbackPrefix):]
	} else if i := strings.Index(raw[:at], feedbackPrefix); i >= 0 {
		feedback = raw[i+len(feedbackPrefix) : at]
	}
	return score, strings.TrimSpace(feedback), nil
}

func clampScore(v float64) float64 {
	switch {
	case v < MinPassingScore:
		return MinPassingScore
	case v > MaxPassingScore:
		return MaxPassingScore
	default:
		return roundScore(v)
	}
}
