package cards

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
)

const cardsJSON = `{
	"flashcards": [
		{"front": "Bonjour", "back": "Hello", "tags": ["greetings"]},
		{"front": "Merci", "back": "Thank you", "tags": ["politeness"]}
	]
}`

func testMilestone() plan.Milestone {
	return plan.Milestone{
		ID:          "m1",
		Title:       "Survival phrases",
		Description: "Greetings and essentials",
		Concepts:    []string{"greetings", "politeness"},
	}
}

func TestGenerateMilestone(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(cardsJSON)})
	svc := NewService(mock, DefaultConfig())

	cards, err := svc.GenerateMilestone(context.Background(), testMilestone())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	req := mock.Calls[0]
	if req.Schema != ListSchema {
		t.Fatal("expected flashcard schema on the request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Survival phrases") || !strings.Contains(msg, "15") {
		t.Fatalf("expected milestone title and card count in the prompt, got: %s", msg)
	}
}

func TestGenerateRemediation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(cardsJSON)})
	svc := NewService(mock, DefaultConfig())

	result := assess.AssessmentResult{
		Score:            0.4,
		MissedConcepts:   []string{"numbers", "genders"},
		ImprovementAreas: "Listen for liaison between words",
	}
	_, err := svc.GenerateRemediation(context.Background(), testMilestone(), result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.LastCall().Messages[0].Content
	for _, want := range []string{"numbers", "genders", "liaison", "40%", "5"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in the remediation prompt, got: %s", want, msg)
		}
	}
}

func TestGenerate_EmptySetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"flashcards": []}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateMilestone(context.Background(), testMilestone())
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}
