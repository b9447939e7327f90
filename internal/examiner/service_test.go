package examiner

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/recall"
)

const quizJSON = `{
	"questions": [
		{"text": "q1", "difficulty": "beginner", "key_concept": "greetings", "correct_answer": "a1", "explanation": "e1"},
		{"text": "q2", "difficulty": "intermediate", "key_concept": "numbers", "correct_answer": "a2", "explanation": "e2"}
	]
}`

func testService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	selector := recall.NewSelector(rand.New(rand.NewPCG(1, 0)))
	return NewService(mock, selector, DefaultConfig()), mock
}

func testGoal() *plan.LearningGoal {
	return &plan.LearningGoal{
		SmartGoal: "Hold a basic French conversation",
		Milestones: []plan.Milestone{
			{ID: "m1", Title: "Survival phrases", Description: "d", Concepts: []string{"greetings"}, DurationDays: 3},
			{ID: "m2", Title: "Ordering food", Description: "d", Concepts: []string{"food"}, DurationDays: 3},
		},
	}
}

func TestGenerateDiagnostic(t *testing.T) {
	svc, mock := testService(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	questions, err := svc.GenerateDiagnostic(context.Background(), testGoal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	req := mock.Calls[0]
	if req.Schema != assess.QuizSchema {
		t.Fatal("expected quiz schema on the request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Survival phrases") || !strings.Contains(msg, "Ordering food") {
		t.Fatalf("expected every milestone in the diagnostic prompt, got: %s", msg)
	}
	if !strings.Contains(msg, "10") {
		t.Fatalf("expected question count in the prompt, got: %s", msg)
	}
}

func TestGenerateExam_IncludesRecallTargets(t *testing.T) {
	svc, mock := testService(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	history := []assess.AssessmentResult{
		{MissedConcepts: []string{"verb conjugation"}},
	}
	_, err := svc.GenerateExam(context.Background(), testGoal().Milestones[1], history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Ordering food") {
		t.Fatalf("expected milestone title in the exam prompt, got: %s", msg)
	}
	if !strings.Contains(msg, "verb conjugation") {
		t.Fatalf("expected recall target in the exam prompt, got: %s", msg)
	}
}

func TestGenerateExam_NoHistoryNoRecall(t *testing.T) {
	svc, mock := testService(llm.MockResponse{Content: json.RawMessage(quizJSON)})

	_, err := svc.GenerateExam(context.Background(), testGoal().Milestones[0], nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	// A first exam must not ask for recall questions.
	if strings.Contains(msg, "previously missed") {
		t.Fatalf("expected no recall instructions in a first exam, got: %s", msg)
	}
}

func TestGenerate_EmptyQuizRejected(t *testing.T) {
	svc, _ := testService(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})

	_, err := svc.GenerateDiagnostic(context.Background(), testGoal())
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}
