package cmd

import (
	"context"
	"testing"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/store"
)

func TestInstallPlanReplaceWipesProject(t *testing.T) {
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	ctx := context.Background()
	p := s.Project("alice", "default")

	oldGoal := &plan.LearningGoal{
		SmartGoal: "Learn French in 30 days",
		Milestones: []plan.Milestone{
			{ID: "old-m1", Title: "Survival phrases", Description: "d", DurationDays: 3},
		},
		TotalDurationDays: 3,
	}
	if err := p.SaveGoal(ctx, oldGoal); err != nil {
		t.Fatalf("save old goal: %v", err)
	}
	if err := p.SaveProfile(ctx, &progress.Profile{
		Name:                  "Learner",
		CompletedMilestones:   []string{"old-m1"},
		CurrentMilestoneIndex: 1,
		AssessmentHistory:     []assess.AssessmentResult{{Score: 0.9}},
	}); err != nil {
		t.Fatalf("save old profile: %v", err)
	}
	if err := p.SaveQuiz(ctx, assess.KindExam, []assess.Question{{Text: "q", KeyConcept: "c"}}); err != nil {
		t.Fatalf("pin old exam: %v", err)
	}
	if err := p.SaveFlashcards(ctx, "old-m1", []assess.Flashcard{{Front: "f", Back: "b"}}); err != nil {
		t.Fatalf("cache old flashcards: %v", err)
	}

	newGoal := &plan.LearningGoal{
		SmartGoal: "Learn Spanish in 30 days",
		Milestones: []plan.Milestone{
			{ID: "new-m1", Title: "Greetings", Description: "d", DurationDays: 3},
		},
		TotalDurationDays: 3,
	}
	if err := installPlan(ctx, p, newGoal, true); err != nil {
		t.Fatalf("install replacement plan: %v", err)
	}

	goal, err := p.LoadGoal(ctx)
	if err != nil || goal == nil || goal.SmartGoal != newGoal.SmartGoal {
		t.Fatalf("expected the replacement goal, got %+v (%v)", goal, err)
	}
	profile, err := p.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected old profile wiped, got %+v", profile)
	}
	if qs, _ := p.LoadQuiz(ctx, assess.KindExam); qs != nil {
		t.Fatal("expected old pinned exam wiped")
	}
	if cards, _ := p.LoadFlashcards(ctx, "old-m1"); cards != nil {
		t.Fatal("expected old flashcard cache wiped")
	}

	// A fresh profile puts the recreated project back at its baseline.
	st := progress.EvaluateState(goal, progress.NewProfile())
	if st.Phase != progress.PhaseNeedsBaseline {
		t.Fatalf("recreated project should need a diagnostic, got %v", st.Phase)
	}
}

func TestInstallPlanFreshProject(t *testing.T) {
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	ctx := context.Background()
	p := s.Project("alice", "default")

	goal := &plan.LearningGoal{
		SmartGoal: "Learn Go in 30 days",
		Milestones: []plan.Milestone{
			{ID: "m1", Title: "Basics", Description: "d", DurationDays: 3},
		},
		TotalDurationDays: 3,
	}
	if err := installPlan(ctx, p, goal, false); err != nil {
		t.Fatalf("install plan: %v", err)
	}
	if !p.Exists() {
		t.Fatal("expected project to exist after install")
	}
}
