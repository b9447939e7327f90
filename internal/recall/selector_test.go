package recall

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/coach/internal/assess"
)

func historyWithMisses(misses ...[]string) []assess.AssessmentResult {
	history := make([]assess.AssessmentResult, len(misses))
	for i, m := range misses {
		history[i] = assess.AssessmentResult{MissedConcepts: m}
	}
	return history
}

func seededSelector(seed uint64) *Selector {
	return NewSelector(rand.New(rand.NewPCG(seed, 0)))
}

func TestTargets_EmptyHistory(t *testing.T) {
	s := seededSelector(1)
	if got := s.Targets(nil); got != nil {
		t.Fatalf("expected no targets, got %v", got)
	}
	if got := s.Targets(historyWithMisses(nil, nil)); got != nil {
		t.Fatalf("expected no targets for history without misses, got %v", got)
	}
}

func TestTargets_AtMostThreeDistinct(t *testing.T) {
	history := historyWithMisses(
		[]string{"tenses", "articles", "tenses"},
		[]string{"numbers", "genders", "articles"},
	)
	s := seededSelector(7)

	targets := s.Targets(history)
	if len(targets) != MaxTargets {
		t.Fatalf("expected %d targets, got %d", MaxTargets, len(targets))
	}
	seen := make(map[string]bool)
	for _, c := range targets {
		if seen[c] {
			t.Fatalf("duplicate target %q", c)
		}
		seen[c] = true
	}
}

func TestTargets_FewerMissesThanMax(t *testing.T) {
	history := historyWithMisses([]string{"tenses", "tenses", "tenses"})
	s := seededSelector(3)

	targets := s.Targets(history)
	if len(targets) != 1 || targets[0] != "tenses" {
		t.Fatalf("expected single distinct target, got %v", targets)
	}
}

func TestTargets_FrequencyBias(t *testing.T) {
	// "tenses" is missed 9 of 10 times; over many draws it should appear
	// far more often than "rare".
	history := historyWithMisses(
		[]string{"tenses", "tenses", "tenses", "tenses", "tenses", "tenses", "tenses", "tenses", "tenses", "rare"},
	)

	hits := 0
	const draws = 200
	for i := range draws {
		s := seededSelector(uint64(i + 1))
		targets := s.Targets(history)
		if len(targets) > 0 && targets[0] == "tenses" {
			hits++
		}
	}
	if hits < draws/2 {
		t.Fatalf("expected repeated misses to dominate first pick, got %d/%d", hits, draws)
	}
}
