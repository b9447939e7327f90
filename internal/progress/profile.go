package progress

import (
	"time"

	"github.com/abhisek/coach/internal/assess"
)

// Profile is the mutable per-project learner state. It is the single
// document the engine mutates: every transition is applied to an in-memory
// copy and the whole profile is written back in one save.
type Profile struct {
	Name string `json:"name"`

	// CompletedMilestones holds milestone ids in completion order.
	// Append-only; a subsequence of the goal's milestone ids.
	CompletedMilestones []string `json:"completed_milestones"`

	// CurrentMilestoneIndex always equals len(CompletedMilestones):
	// progression is strictly sequential, the ordered scan of the goal is
	// the source of truth and this counter is advisory.
	CurrentMilestoneIndex int `json:"current_milestone_index"`

	// AssessmentHistory is append-only, chronological, one entry per
	// graded submission (diagnostic and exams alike).
	AssessmentHistory []assess.AssessmentResult `json:"assessment_history"`

	// CurrentDeckPath and MilestoneStartDate mark an in-progress study
	// session. Set together when materials are generated for a
	// not-yet-passed milestone, cleared together when it is passed.
	CurrentDeckPath    string     `json:"current_deck_path,omitempty"`
	MilestoneStartDate *time.Time `json:"milestone_start_date,omitempty"`

	// TopicMastery maps concept name to mastery score [0,1]. Informational;
	// not maintained by the engine.
	TopicMastery map[string]float64 `json:"topic_mastery,omitempty"`
}

// NewProfile returns the default profile for a fresh project.
func NewProfile() *Profile {
	return &Profile{Name: "Learner"}
}

// LatestResult returns the most recent assessment result, or nil.
func (p *Profile) LatestResult() *assess.AssessmentResult {
	if len(p.AssessmentHistory) == 0 {
		return nil
	}
	return &p.AssessmentHistory[len(p.AssessmentHistory)-1]
}

// HasCompleted reports whether the milestone id is already completed.
func (p *Profile) HasCompleted(milestoneID string) bool {
	for _, id := range p.CompletedMilestones {
		if id == milestoneID {
			return true
		}
	}
	return false
}
