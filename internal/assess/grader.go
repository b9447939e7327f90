package assess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/coach/internal/llm"
)

// ErrAnswerCountMismatch is returned when a submission does not carry one
// answer per question. Pairing is positional; truncating silently would
// drop answers, so mismatches fail validation instead.
var ErrAnswerCountMismatch = errors.New("answer count does not match question count")

// GraderConfig holds tunables for grading calls.
type GraderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGraderConfig returns sensible defaults. Grading should be as
// deterministic as the judge allows.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:   4096,
		Temperature: 0.0,
	}
}

// Grader evaluates free-text answers against generated questions, with the
// content provider acting as judge. The contract is about the shape of the
// result and how it is persisted, not grading correctness — the judge is
// inherently non-deterministic.
type Grader struct {
	provider llm.Provider
	cfg      GraderConfig

	now func() time.Time
}

// NewGrader creates a grader.
func NewGrader(provider llm.Provider, cfg GraderConfig) *Grader {
	return &Grader{provider: provider, cfg: cfg, now: time.Now}
}

// EvaluateSubmission grades answers positionally paired with questions.
// The result's Timestamp is the grading time.
func (g *Grader) EvaluateSubmission(ctx context.Context, questions []Question, answers []string) (*AssessmentResult, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions to grade", ErrAnswerCountMismatch)
	}
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrAnswerCountMismatch, len(answers), len(questions))
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	req := llm.Request{
		System: graderSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingMessage(questions, answers)},
		},
		Schema:      ResultSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading: %w", err)
	}

	var result AssessmentResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse grading result: %w", err)}
	}

	// Clamp rather than reject: some judges return 1.0000001-style noise.
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}

	result.Timestamp = g.now()
	return &result, nil
}
