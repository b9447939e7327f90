// Package recall chooses previously missed concepts to interleave into new
// assessments. Re-testing past misses alongside new material is the active
// recall half of the exam mix.
package recall

import (
	"math/rand/v2"

	"github.com/abhisek/coach/internal/assess"
)

// MaxTargets is the most recall concepts folded into a single exam.
const MaxTargets = 3

// Selector samples recall targets from assessment history.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. rng may be nil, in which case the global
// source is used; tests pass a seeded source for determinism.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Targets collects every missed concept across the history — repeats kept,
// so frequently missed concepts are proportionally more likely — and samples
// up to MaxTargets distinct concepts without replacement. An empty history
// yields no targets: no recall bias is applied to a learner's first exam.
func (s *Selector) Targets(history []assess.AssessmentResult) []string {
	var missed []string
	for _, result := range history {
		missed = append(missed, result.MissedConcepts...)
	}
	if len(missed) == 0 {
		return nil
	}

	s.shuffle(missed)

	var targets []string
	seen := make(map[string]bool)
	for _, concept := range missed {
		if seen[concept] {
			continue
		}
		seen[concept] = true
		targets = append(targets, concept)
		if len(targets) == MaxTargets {
			break
		}
	}
	return targets
}

func (s *Selector) shuffle(concepts []string) {
	swap := func(i, j int) { concepts[i], concepts[j] = concepts[j], concepts[i] }
	if s.rng != nil {
		s.rng.Shuffle(len(concepts), swap)
		return
	}
	rand.Shuffle(len(concepts), swap)
}
