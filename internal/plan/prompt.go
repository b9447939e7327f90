package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

const builderSystemPrompt = `You are an expert learning coach. You turn free-form study topics into structured, realistic study plans a motivated adult can follow on their own.`

func buildCreateMessage(topic, existingPlan string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The user wants to learn: %q\n", topic))

	if existingPlan != "" {
		b.WriteString("\nThe user already has a rough plan they want incorporated:\n")
		b.WriteString(existingPlan)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
1. Convert the topic into a specific, measurable, achievable, relevant, and time-bound (SMART) goal.
2. Break it into a sequence of milestones, each with a title, a one-paragraph description, the key concepts it covers, and a duration in days (default 3 when unsure).
3. Order milestones from fundamentals to advanced material; each should build on the previous ones.
4. Set total_duration_days to the sum of the milestone durations.
5. Echo the user's topic verbatim in original_request.`)

	return b.String()
}

func buildReviseMessage(current *LearningGoal, feedback string) (string, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("marshal current plan: %w", err)
	}

	var b strings.Builder

	b.WriteString("You previously generated this learning plan:\n")
	b.Write(currentJSON)
	b.WriteString("\n\nThe user has feedback on it:\n")
	b.WriteString(fmt.Sprintf("%q\n", feedback))

	b.WriteString(`
Instructions:
1. Produce a full replacement plan that addresses the feedback. Do not produce a diff.
2. Keep milestones the feedback does not touch as close to the original as possible.
3. The plan must remain SMART, with total_duration_days equal to the sum of milestone durations.`)

	return b.String(), nil
}
