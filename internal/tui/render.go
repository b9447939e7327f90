package tui

import (
	"fmt"
	"strings"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/progress"
)

// RenderPlan formats a learning goal for terminal output.
func RenderPlan(goal *plan.LearningGoal) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(goal.SmartGoal))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d milestones · %d days total", len(goal.Milestones), goal.TotalDurationDays)))
	b.WriteString("\n\n")
	for i, m := range goal.Milestones {
		b.WriteString(bodyStyle.Render(fmt.Sprintf("%d. %s", i+1, m.Title)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d days)", m.DurationDays)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("   " + m.Description))
		b.WriteString("\n")
		if len(m.Concepts) > 0 {
			b.WriteString(tagStyle.Render("   " + strings.Join(m.Concepts, " · ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderResult formats a graded assessment, marking pass or fail against
// the threshold. A zero threshold renders the score alone, for baselines
// that have no pass bar.
func RenderResult(result *assess.AssessmentResult, threshold float64) string {
	var b strings.Builder

	score := fmt.Sprintf("Score: %.0f%%", result.Score*100)
	if threshold <= 0 {
		b.WriteString(titleStyle.Render(score))
	} else if result.Score >= threshold {
		b.WriteString(successStyle.Render(score + "  PASSED"))
	} else {
		b.WriteString(failureStyle.Render(score + fmt.Sprintf("  below the %.0f%% bar", threshold*100)))
	}
	b.WriteString("\n\n")

	for i, qr := range result.QuestionResults {
		mark := successStyle.Render("✓")
		if !qr.Correct {
			mark = failureStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, bodyStyle.Render(qr.Question)))
		if !qr.Correct {
			b.WriteString(dimStyle.Render("   your answer:  "+qr.UserAnswer) + "\n")
			b.WriteString(dimStyle.Render("   correct:      "+qr.CorrectAnswer) + "\n")
			if qr.Explanation != "" {
				b.WriteString(hintStyle.Render("   "+qr.Explanation) + "\n")
			}
		}
	}

	if len(result.MissedConcepts) > 0 {
		b.WriteString("\n")
		b.WriteString(tagStyle.Render("Needs work: " + strings.Join(dedupe(result.MissedConcepts), " · ")))
		b.WriteString("\n")
	}
	if result.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(result.Feedback))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatus formats the learner's position in the plan.
func RenderStatus(goal *plan.LearningGoal, st progress.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(goal.SmartGoal))
	b.WriteString("\n")
	b.WriteString(progressBar(st.Completed, st.Total, 40))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d milestones", st.Completed, st.Total)))
	b.WriteString("\n\n")

	switch st.Phase {
	case progress.PhaseNeedsBaseline:
		b.WriteString(bodyStyle.Render("Next: take the diagnostic quiz (coach quiz)"))
	case progress.PhaseAllComplete:
		b.WriteString(successStyle.Render("All milestones complete. Goal achieved!"))
	default:
		b.WriteString(bodyStyle.Render("Current milestone: " + st.Active.Title))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(st.Active.Description))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderDeck summarizes a packaged flashcard deck.
func RenderDeck(path string, cards []assess.Flashcard) string {
	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("%d flashcards ready", len(cards))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Deck file: " + path))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Import into Anki via File → Import."))
	b.WriteString("\n")
	return b.String()
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
