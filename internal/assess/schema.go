package assess

import "github.com/abhisek/coach/internal/llm"

// QuizSchema defines the JSON schema for quiz and exam generation.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "An ordered list of open-ended assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question, answerable in free text",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"key_concept": map[string]any{
							"type":        "string",
							"description": "The specific concept being tested",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "A model answer",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct",
						},
					},
					"required":             []any{"text", "difficulty", "key_concept", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// ResultSchema defines the JSON schema for grading verdicts.
var ResultSchema = &llm.Schema{
	Name:        "assessment-result",
	Description: "Grading verdict for a quiz submission with per-question breakdown",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Fraction of answers graded correct, 0.0 - 1.0",
			},
			"correct_concepts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"missed_concepts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"question_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":       map[string]any{"type": "string"},
						"user_answer":    map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"explanation":    map[string]any{"type": "string"},
						"correct":        map[string]any{"type": "boolean"},
					},
					"required":             []any{"question", "user_answer", "correct_answer", "explanation", "correct"},
					"additionalProperties": false,
				},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging overall summary",
			},
			"excelled_at": map[string]any{
				"type":        "string",
				"description": "What the learner did well",
			},
			"improvement_areas": map[string]any{
				"type":        "string",
				"description": "What the learner missed or should revisit",
			},
			"challenges": map[string]any{
				"type":        "string",
				"description": "Stretch suggestions beyond the current plan",
			},
		},
		"required":             []any{"score", "correct_concepts", "missed_concepts", "question_results", "feedback"},
		"additionalProperties": false,
	},
}
