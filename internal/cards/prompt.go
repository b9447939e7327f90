package cards

import (
	"fmt"
	"strings"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/plan"
)

const curriculumSystemPrompt = `You are an expert curriculum designer creating spaced-repetition flashcards. Good cards are atomic: one concept, question, or term on the front, one clear answer on the back.`

const remediationSystemPrompt = `You are a remediation specialist. A learner failed a milestone exam and you are creating targeted flashcards that attack their specific weaknesses, not the milestone in general.`

func buildMilestoneMessage(milestone plan.Milestone, cardCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner is working on the milestone %q.\n", milestone.Title))
	b.WriteString(fmt.Sprintf("Description: %s\n", milestone.Description))
	if len(milestone.Concepts) > 0 {
		b.WriteString(fmt.Sprintf("Key concepts: %s\n", strings.Join(milestone.Concepts, ", ")))
	}

	b.WriteString(fmt.Sprintf(`
Generate %d high-quality flashcards for this milestone.
- Front: concept, question, or term.
- Back: definition, answer, or explanation.
- Tags: 1-2 relevant tags (e.g. %q, "Basic").
Cover every key concept at least once.`, cardCount, milestone.Title))

	return b.String()
}

func buildRemediationMessage(milestone plan.Milestone, result assess.AssessmentResult, cardCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner failed their exam for %q with a score of %.0f%%.\n\n", milestone.Title, result.Score*100))

	if result.ImprovementAreas != "" {
		b.WriteString(fmt.Sprintf("Areas that need improvement:\n%s\n\n", result.ImprovementAreas))
	}
	if result.Challenges != "" {
		b.WriteString(fmt.Sprintf("Challenges to address:\n%s\n\n", result.Challenges))
	}
	if len(result.MissedConcepts) > 0 {
		b.WriteString(fmt.Sprintf("Missed concepts: %s\n\n", strings.Join(result.MissedConcepts, ", ")))
	}

	b.WriteString(fmt.Sprintf(`Generate %d REMEDIATION flashcards that directly address these specific weaknesses.
- Front: concept, question, or term.
- Back: definition, answer, or explanation.
- Tags: include "remediation" and %q.`, cardCount, milestone.Title))

	return b.String()
}
