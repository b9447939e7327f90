package progress

import "github.com/abhisek/coach/internal/plan"

// Phase describes where the learner is in the study lifecycle.
type Phase string

const (
	// PhaseNeedsBaseline means no diagnostic has been graded yet.
	PhaseNeedsBaseline Phase = "needs_baseline"
	// PhaseStudying means a milestone is active and study can proceed.
	PhaseStudying Phase = "studying"
	// PhaseAllComplete means every milestone in the goal has been passed.
	PhaseAllComplete Phase = "all_complete"
)

// State is a snapshot of the learner's position against the goal.
type State struct {
	Phase Phase
	// Active is the first not-yet-completed milestone in goal order, or
	// nil when the phase is PhaseAllComplete.
	Active *plan.Milestone
	// Completed and Total count milestones.
	Completed int
	Total     int
}

// EvaluateState derives the current phase from the goal and profile. The
// active milestone is found by scanning the goal in order for the first
// milestone whose id is not in the completed set, so plan revisions that
// insert or reorder milestones are picked up immediately.
func EvaluateState(goal *plan.LearningGoal, profile *Profile) State {
	st := State{Total: len(goal.Milestones), Completed: len(profile.CompletedMilestones)}
	for i := range goal.Milestones {
		m := &goal.Milestones[i]
		if !profile.HasCompleted(m.ID) {
			st.Active = m
			break
		}
	}
	switch {
	case st.Active == nil:
		st.Phase = PhaseAllComplete
	case len(profile.AssessmentHistory) == 0:
		st.Phase = PhaseNeedsBaseline
	default:
		st.Phase = PhaseStudying
	}
	return st
}
