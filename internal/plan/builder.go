package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/coach/internal/llm"
)

// ErrValidation marks malformed plan or milestone input. The caller's fault,
// never retried.
var ErrValidation = errors.New("invalid plan input")

// Config holds tunables for plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Plans are long-form output.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Builder turns free-text topics into structured learning goals.
type Builder struct {
	provider llm.Provider
	cfg      Config
}

// NewBuilder creates a plan builder.
func NewBuilder(provider llm.Provider, cfg Config) *Builder {
	return &Builder{provider: provider, cfg: cfg}
}

// Create generates a new learning goal for the topic. existingPlan, when
// non-empty, is a rough plan the user wants folded in.
func (b *Builder) Create(ctx context.Context, topic, existingPlan string) (*LearningGoal, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("%w: topic must not be empty", ErrValidation)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePlanCreate)
	return b.generate(ctx, buildCreateMessage(topic, existingPlan))
}

// Revise sends the current plan plus free-text feedback back to the provider
// and returns a full replacement plan. Accepting or looping again is the
// caller's decision.
func (b *Builder) Revise(ctx context.Context, current *LearningGoal, feedback string) (*LearningGoal, error) {
	if current == nil {
		return nil, fmt.Errorf("%w: no current plan to revise", ErrValidation)
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, fmt.Errorf("%w: feedback must not be empty", ErrValidation)
	}

	userMsg, err := buildReviseMessage(current, feedback)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePlanRevise)
	return b.generate(ctx, userMsg)
}

func (b *Builder) generate(ctx context.Context, userMsg string) (*LearningGoal, error) {
	req := llm.Request{
		System: builderSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GoalSchema,
		MaxTokens:   b.cfg.MaxTokens,
		Temperature: b.cfg.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	return ParseGoal(resp.Content)
}

// ParseGoal converts a schema-valid provider response into a LearningGoal:
// milestones get opaque ids, durations default to 3 days, the total is
// recomputed, and structural problems the schema cannot express (duplicate
// titles) fail closed.
func ParseGoal(raw json.RawMessage) (*LearningGoal, error) {
	var goal LearningGoal
	if err := json.Unmarshal(raw, &goal); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("parse goal: %w", err)}
	}

	if len(goal.Milestones) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("plan has no milestones")}
	}

	seen := make(map[string]bool, len(goal.Milestones))
	for i := range goal.Milestones {
		m := &goal.Milestones[i]
		m.Title = strings.TrimSpace(m.Title)
		if m.Title == "" {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("milestone %d has an empty title", i)}
		}
		if seen[m.Title] {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("duplicate milestone title %q", m.Title)}
		}
		seen[m.Title] = true

		if m.DurationDays <= 0 {
			m.DurationDays = defaultDurationDays
		}
		m.ID = uuid.NewString()
	}

	goal.TotalDurationDays = sumDurations(goal.Milestones)
	return &goal, nil
}

// UpdateMilestones returns a copy of the goal with a new milestone sequence
// and a recomputed total duration. Pure transformation, no provider call.
func UpdateMilestones(goal *LearningGoal, milestones []Milestone) (*LearningGoal, error) {
	if goal == nil {
		return nil, fmt.Errorf("%w: no goal to update", ErrValidation)
	}
	if err := ValidateMilestones(milestones); err != nil {
		return nil, err
	}

	updated := *goal
	updated.Milestones = make([]Milestone, len(milestones))
	copy(updated.Milestones, milestones)

	for i := range updated.Milestones {
		if updated.Milestones[i].ID == "" {
			updated.Milestones[i].ID = uuid.NewString()
		}
	}

	updated.TotalDurationDays = sumDurations(updated.Milestones)
	return &updated, nil
}

// ValidateMilestones checks required milestone fields: non-empty unique
// titles, a description, and a positive duration.
func ValidateMilestones(milestones []Milestone) error {
	if len(milestones) == 0 {
		return fmt.Errorf("%w: at least one milestone is required", ErrValidation)
	}

	seen := make(map[string]bool, len(milestones))
	for i, m := range milestones {
		title := strings.TrimSpace(m.Title)
		if title == "" {
			return fmt.Errorf("%w: milestone %d is missing a title", ErrValidation, i)
		}
		if seen[title] {
			return fmt.Errorf("%w: duplicate milestone title %q", ErrValidation, title)
		}
		seen[title] = true

		if strings.TrimSpace(m.Description) == "" {
			return fmt.Errorf("%w: milestone %q is missing a description", ErrValidation, title)
		}
		if m.DurationDays <= 0 {
			return fmt.Errorf("%w: milestone %q needs a positive duration", ErrValidation, title)
		}
	}
	return nil
}

func sumDurations(milestones []Milestone) int {
	total := 0
	for _, m := range milestones {
		total += m.DurationDays
	}
	return total
}
