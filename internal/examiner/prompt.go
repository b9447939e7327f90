package examiner

import (
	"fmt"
	"strings"

	"github.com/abhisek/coach/internal/plan"
)

const diagnosticSystemPrompt = `You are an expert teacher designing a diagnostic quiz. The quiz establishes a learner's baseline before they start studying, so it must sample the whole plan, not one corner of it.`

const examSystemPrompt = `You are a strict examiner. Your assessments decide whether a learner has actually mastered a milestone, so questions must be challenging but fair, and answerable in free text.`

func buildDiagnosticMessage(goal *plan.LearningGoal, questionCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner's goal: %s\n\n", goal.SmartGoal))
	b.WriteString("The plan's milestones:\n")
	for i, m := range goal.Milestones {
		b.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, m.Title, strings.Join(m.Concepts, ", ")))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Generate a %d-question diagnostic quiz assessing the learner's current knowledge across these milestones.
- Cover every milestone at least once.
- Range difficulty from beginner to intermediate.
- Each question must name the specific key_concept it tests.`, questionCount))

	return b.String()
}

func buildExamMessage(milestone plan.Milestone, questionCount, milestoneCount int, recallTargets []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner has just finished studying the milestone %q.\n", milestone.Title))
	b.WriteString(fmt.Sprintf("Description: %s\n", milestone.Description))
	if len(milestone.Concepts) > 0 {
		b.WriteString(fmt.Sprintf("Key concepts: %s\n", strings.Join(milestone.Concepts, ", ")))
	}

	b.WriteString(fmt.Sprintf("\nGenerate a %d-question assessment.\n", questionCount))
	b.WriteString(fmt.Sprintf("- %d questions strictly about %q.\n", milestoneCount, milestone.Title))

	recallCount := questionCount - milestoneCount
	if len(recallTargets) > 0 {
		b.WriteString(fmt.Sprintf("- %d active-recall questions. These MUST test the following previously missed concepts: %s.\n",
			recallCount, strings.Join(recallTargets, ", ")))
	} else {
		b.WriteString(fmt.Sprintf("- %d additional questions on the same milestone, applying its concepts in new contexts.\n", recallCount))
	}

	b.WriteString("\nQuestions should be challenging but fair. Each must name the specific key_concept it tests.")

	return b.String()
}
