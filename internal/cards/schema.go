package cards

import "github.com/abhisek/coach/internal/llm"

// ListSchema defines the JSON schema for flashcard generation.
var ListSchema = &llm.Schema{
	Name:        "flashcard-list",
	Description: "A list of front/back study flashcards with tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "Concept, question, or term",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "Definition, answer, or explanation",
						},
						"tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"front", "back", "tags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"flashcards"},
		"additionalProperties": false,
	},
}
