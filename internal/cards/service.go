// Package cards generates milestone flashcard sets and post-failure
// remediation sets, and hands finished sets to a deck packager.
package cards

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
)

// Packager turns an ordered card list into a study-deck artifact and
// returns an opaque reference to it (a file path). The engine stores only
// that reference, never artifact internals.
type Packager interface {
	PackageDeck(deckName string, cards []assess.Flashcard) (string, error)
}

// Config holds tunables for flashcard generation.
type Config struct {
	// MilestoneCards is the deck size for a milestone's main set.
	MilestoneCards int

	// RemediationCards is the size of a post-failure supplementary set.
	RemediationCards int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the 15-card milestone / 5-card remediation defaults.
func DefaultConfig() Config {
	return Config{
		MilestoneCards:   15,
		RemediationCards: 5,
		MaxTokens:        8192,
		Temperature:      0.7,
	}
}

// Service generates flashcard sets.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a flashcard service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateMilestone produces the main flashcard set for a milestone.
func (s *Service) GenerateMilestone(ctx context.Context, milestone plan.Milestone) ([]assess.Flashcard, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFlashcards)
	return s.generate(ctx, curriculumSystemPrompt, buildMilestoneMessage(milestone, s.cfg.MilestoneCards))
}

// GenerateRemediation produces a small supplementary set targeted at the
// weaknesses named in a failed result. Gating on whether remediation is
// warranted at all is the progression engine's job.
func (s *Service) GenerateRemediation(ctx context.Context, milestone plan.Milestone, result assess.AssessmentResult) ([]assess.Flashcard, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRemediation)
	return s.generate(ctx, remediationSystemPrompt, buildRemediationMessage(milestone, result, s.cfg.RemediationCards))
}

func (s *Service) generate(ctx context.Context, system, userMsg string) ([]assess.Flashcard, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ListSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("flashcard generation: %w", err)
	}

	var out struct {
		Flashcards []assess.Flashcard `json:"flashcards"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("parse flashcards: %w", err)}
	}
	if len(out.Flashcards) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("no flashcards generated")}
	}

	return out.Flashcards, nil
}
