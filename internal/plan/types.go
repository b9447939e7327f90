package plan

// Milestone is one ordered unit of a learning goal, with its own concepts
// and study duration. ID is an opaque identifier assigned when the plan is
// parsed; Title is display text only and all caches key off the ID.
type Milestone struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Concepts     []string `json:"concepts"`
	DurationDays int      `json:"duration_days"`
}

// LearningGoal is the structured study plan for one project. Created once,
// replaced only through an explicit revise or milestone update.
type LearningGoal struct {
	OriginalRequest   string      `json:"original_request"`
	SmartGoal         string      `json:"smart_goal"`
	Milestones        []Milestone `json:"milestones"`
	TotalDurationDays int         `json:"total_duration_days"`
}

// MilestoneByID returns the milestone with the given id, or nil.
func (g *LearningGoal) MilestoneByID(id string) *Milestone {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			return &g.Milestones[i]
		}
	}
	return nil
}

// defaultDurationDays is used when the provider omits a milestone duration.
const defaultDurationDays = 3
