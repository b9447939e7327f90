package plan

import "github.com/abhisek/coach/internal/llm"

// GoalSchema defines the JSON schema for learning-plan generation.
// minItems on milestones makes a zero-milestone plan a schema violation,
// so an unusable plan fails closed instead of reaching callers.
var GoalSchema = &llm.Schema{
	Name:        "learning-goal",
	Description: "A SMART learning goal broken into ordered milestones",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"original_request": map[string]any{
				"type":        "string",
				"description": "The user's topic, verbatim",
			},
			"smart_goal": map[string]any{
				"type":        "string",
				"description": "Specific, measurable, achievable, relevant, time-bound restatement of the goal",
			},
			"milestones": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short unique milestone title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What the learner covers in this milestone",
						},
						"concepts": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Named topics covered, in study order",
						},
						"duration_days": map[string]any{
							"type":        "integer",
							"description": "Study days for this milestone (default 3)",
						},
					},
					"required":             []any{"title", "description", "concepts"},
					"additionalProperties": false,
				},
			},
			"total_duration_days": map[string]any{
				"type":        "integer",
				"description": "Sum of milestone durations",
			},
		},
		"required":             []any{"original_request", "smart_goal", "milestones", "total_duration_days"},
		"additionalProperties": false,
	},
}
