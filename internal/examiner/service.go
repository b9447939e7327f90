// Package examiner generates assessment question sets: the one-time
// diagnostic baseline and the per-milestone exams with their active-recall
// question mix.
package examiner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/recall"
)

// Config holds tunables for assessment generation.
type Config struct {
	// QuestionCount is the total questions per assessment.
	QuestionCount int

	// MilestoneQuestions is how many exam questions target the active
	// milestone; the remainder is the recall share (the ~70/30 policy).
	MilestoneQuestions int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the 10-question, 7/3 split defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount:      10,
		MilestoneQuestions: 7,
		MaxTokens:          8192,
		Temperature:        0.7,
	}
}

// Service generates diagnostic quizzes and milestone exams.
type Service struct {
	provider llm.Provider
	selector *recall.Selector
	cfg      Config
}

// NewService creates an examiner service.
func NewService(provider llm.Provider, selector *recall.Selector, cfg Config) *Service {
	return &Service{provider: provider, selector: selector, cfg: cfg}
}

// GenerateDiagnostic produces the baseline quiz for a fresh project,
// sampling every milestone in the plan.
func (s *Service) GenerateDiagnostic(ctx context.Context, goal *plan.LearningGoal) ([]assess.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)
	return s.generate(ctx, diagnosticSystemPrompt, buildDiagnosticMessage(goal, s.cfg.QuestionCount))
}

// GenerateExam produces the completion exam for the given milestone. When
// the history holds past misses, up to three of them are folded in as
// active-recall targets; a first exam gets no recall bias.
func (s *Service) GenerateExam(ctx context.Context, milestone plan.Milestone, history []assess.AssessmentResult) ([]assess.Question, error) {
	targets := s.selector.Targets(history)

	ctx = llm.WithPurpose(ctx, llm.PurposeExam)
	userMsg := buildExamMessage(milestone, s.cfg.QuestionCount, s.cfg.MilestoneQuestions, targets)
	return s.generate(ctx, examSystemPrompt, userMsg)
}

func (s *Service) generate(ctx context.Context, system, userMsg string) ([]assess.Question, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      assess.QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("assessment generation: %w", err)
	}

	var quiz assess.Quiz
	if err := json.Unmarshal(resp.Content, &quiz); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse quiz: %w", err)}
	}
	if len(quiz.Questions) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("quiz has no questions")}
	}

	return quiz.Questions, nil
}
