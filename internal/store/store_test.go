package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGoal() *plan.LearningGoal {
	return &plan.LearningGoal{
		OriginalRequest: "learn french",
		SmartGoal:       "Hold a basic French conversation in 30 days",
		Milestones: []plan.Milestone{
			{ID: "m1", Title: "Survival phrases", Description: "d", DurationDays: 3},
		},
		TotalDurationDays: 3,
	}
}

func TestGoalRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Project("alice", "french")

	// Absent goal loads as nil, not an error.
	got, err := p.LoadGoal(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil goal before save")
	}
	if p.Exists() {
		t.Fatal("expected project to not exist yet")
	}

	if err := p.SaveGoal(ctx, testGoal()); err != nil {
		t.Fatalf("save goal: %v", err)
	}
	got, err = p.LoadGoal(ctx)
	if err != nil {
		t.Fatalf("load goal: %v", err)
	}
	if got.SmartGoal != testGoal().SmartGoal || got.Milestones[0].ID != "m1" {
		t.Fatalf("goal did not round-trip: %+v", got)
	}
	if !p.Exists() {
		t.Fatal("expected project to exist after save")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Project("alice", "french")

	got, err := p.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil profile before save")
	}

	profile := progress.NewProfile()
	profile.CompletedMilestones = []string{"m1"}
	profile.CurrentMilestoneIndex = 1
	if err := p.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	got, err = p.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if len(got.CompletedMilestones) != 1 || got.CurrentMilestoneIndex != 1 {
		t.Fatalf("profile did not round-trip: %+v", got)
	}
}

func TestQuizPinning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Project("alice", "french")

	got, err := p.LoadQuiz(ctx, assess.KindExam)
	if err != nil || got != nil {
		t.Fatalf("expected nil quiz before pin, got %v, %v", got, err)
	}

	questions := []assess.Question{{Text: "q1", KeyConcept: "c1", CorrectAnswer: "a1"}}
	if err := p.SaveQuiz(ctx, assess.KindExam, questions); err != nil {
		t.Fatalf("pin quiz: %v", err)
	}

	got, err = p.LoadQuiz(ctx, assess.KindExam)
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if len(got) != 1 || got[0].Text != "q1" {
		t.Fatalf("quiz did not round-trip: %+v", got)
	}

	// Kinds are independent documents.
	if got, _ := p.LoadQuiz(ctx, assess.KindDiagnostic); got != nil {
		t.Fatal("expected diagnostic slot to stay empty")
	}

	if err := p.DeleteQuiz(ctx, assess.KindExam); err != nil {
		t.Fatalf("delete quiz: %v", err)
	}
	if got, _ := p.LoadQuiz(ctx, assess.KindExam); got != nil {
		t.Fatal("expected quiz gone after delete")
	}
	// Deleting again is not an error.
	if err := p.DeleteQuiz(ctx, assess.KindExam); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestFlashcardsKeyedCache(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Project("alice", "french")

	cards := []assess.Flashcard{{Front: "Bonjour", Back: "Hello"}}
	if err := p.SaveFlashcards(ctx, "m1", cards); err != nil {
		t.Fatalf("save flashcards: %v", err)
	}
	if err := p.SaveFlashcards(ctx, "remediation-m1", cards[:1]); err != nil {
		t.Fatalf("save remediation flashcards: %v", err)
	}

	got, err := p.LoadFlashcards(ctx, "m1")
	if err != nil || len(got) != 1 {
		t.Fatalf("flashcards did not round-trip: %v, %v", got, err)
	}
	if got, _ := p.LoadFlashcards(ctx, "m2"); got != nil {
		t.Fatal("expected nil for unknown key")
	}
}

func TestProjectIsolationAndListing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Project("alice", "french").SaveGoal(ctx, testGoal()); err != nil {
		t.Fatalf("save goal: %v", err)
	}
	if err := s.Project("alice", "Go Basics!").SaveGoal(ctx, testGoal()); err != nil {
		t.Fatalf("save goal: %v", err)
	}
	if err := s.Project("bob", "french").SaveGoal(ctx, testGoal()); err != nil {
		t.Fatalf("save goal: %v", err)
	}

	names, err := s.ListProjects("alice")
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(names) != 2 || names[0] != "french" || names[1] != "go_basics" {
		t.Fatalf("unexpected project list: %v", names)
	}

	// Same pair shares a lock; different pairs do not.
	a1, a2 := s.Project("alice", "french"), s.Project("alice", "french")
	if a1.mu != a2.mu {
		t.Fatal("expected shared lock for the same project")
	}
	if a1.mu == s.Project("bob", "french").mu {
		t.Fatal("expected distinct locks per project")
	}
}

func TestSanitizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"Go Basics!", "go_basics"},
		{"  spaced  out  ", "spaced_out"},
		{"weird///name", "weird_name"},
		{"", "default"},
		{"!!!", "default"},
	}
	for _, tc := range cases {
		if got := SanitizeID(tc.in); got != tc.want {
			t.Fatalf("SanitizeID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLegacyLayoutMigration(t *testing.T) {
	dir := t.TempDir()

	// Old layout: documents directly under <root>/<user>/.
	legacy := filepath.Join(dir, "alice")
	if err := os.MkdirAll(legacy, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(legacy, goalFile), []byte(`{"smart_goal":"old goal","milestones":[{"id":"m1","title":"t","description":"d","duration_days":1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	goal, err := s.Project("alice", "default").LoadGoal(context.Background())
	if err != nil {
		t.Fatalf("load migrated goal: %v", err)
	}
	if goal == nil || goal.SmartGoal != "old goal" {
		t.Fatalf("expected migrated goal, got %+v", goal)
	}
	if _, err := os.Stat(legacy); !os.IsNotExist(err) {
		t.Fatal("expected legacy directory to be moved")
	}
}

func TestJournalAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	j := s.Journal()

	entries := []llm.JournalEntry{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "plan-create", InputTokens: 100, OutputTokens: 50, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "plan-create", InputTokens: 80, OutputTokens: 40, LatencyMs: 700, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "grading-evaluate", InputTokens: 60, OutputTokens: 10, LatencyMs: 500, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range entries {
		if err := j.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	calls, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	// Newest first.
	if calls[0].Purpose != "grading-evaluate" || calls[0].Success {
		t.Fatalf("unexpected newest call: %+v", calls[0])
	}

	byPurpose, err := j.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Key == "plan-create" {
			if u.Calls != 2 || u.InputTokens != 180 || u.OutputTokens != 90 || u.Failures != 0 {
				t.Fatalf("unexpected plan-create usage: %+v", u)
			}
		}
		if u.Key == "grading-evaluate" && u.Failures != 1 {
			t.Fatalf("expected 1 failure for grading, got %+v", u)
		}
	}

	byModel, err := j.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
}
