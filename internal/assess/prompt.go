package assess

import (
	"fmt"
	"strings"
)

const graderSystemPrompt = `You are a fair but strict examiner grading open-ended quiz answers. You judge whether each answer demonstrates the tested concept, not whether it matches the model answer word for word.`

func buildGradingMessage(questions []Question, answers []string) string {
	var b strings.Builder

	b.WriteString("Grade the following quiz:\n\n")
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, q.Text))
		b.WriteString(fmt.Sprintf("Concept: %s\n", q.KeyConcept))
		b.WriteString(fmt.Sprintf("Model Answer: %s\n", q.CorrectAnswer))
		b.WriteString(fmt.Sprintf("User Answer: %s\n\n", answers[i]))
	}

	b.WriteString(`Instructions:
1. Grade each answer as correct or incorrect and fill question_results in question order.
2. Set score to the fraction of correct answers (0.0 to 1.0).
3. List the concepts the user demonstrated in correct_concepts and those they missed in missed_concepts.
4. In feedback, give a short encouraging summary of the whole submission.
5. In excelled_at, name what the user did particularly well.
6. In improvement_areas, name what the user missed or got wrong.
7. In challenges, suggest how the user could stretch further. For a near-perfect score, suggest questions that go beyond the current material or apply the concepts in new contexts.`)

	return b.String()
}
