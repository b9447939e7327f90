package assess

import "time"

// Kind distinguishes the two assessment types a project can hold.
type Kind string

const (
	// KindDiagnostic is the one-time baseline quiz taken before any
	// milestone study begins.
	KindDiagnostic Kind = "diagnostic"

	// KindExam is the milestone-completion assessment, gated at the
	// pass threshold.
	KindExam Kind = "exam"
)

// Question is one generated assessment question. Immutable once persisted
// for a quiz instance: grading always runs against the persisted copy.
type Question struct {
	Text          string `json:"text"`
	Difficulty    string `json:"difficulty"` // beginner, intermediate, advanced
	KeyConcept    string `json:"key_concept"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Quiz is an ordered question list as returned by the provider. Kind is
// filled in when a quiz is pinned, not by the provider.
type Quiz struct {
	Kind      Kind       `json:"kind,omitempty"`
	Questions []Question `json:"questions"`
}

// QuestionResult is the per-question grading breakdown.
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Correct       bool   `json:"correct"`
}

// AssessmentResult is one graded submission. Timestamp is set at grading
// time, not generation time.
type AssessmentResult struct {
	Score            float64          `json:"score"` // 0.0 - 1.0
	CorrectConcepts  []string         `json:"correct_concepts"`
	MissedConcepts   []string         `json:"missed_concepts"`
	QuestionResults  []QuestionResult `json:"question_results"`
	Feedback         string           `json:"feedback"`
	ExcelledAt       string           `json:"excelled_at,omitempty"`
	ImprovementAreas string           `json:"improvement_areas,omitempty"`
	Challenges       string           `json:"challenges,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
}

// Flashcard is one front/back study card.
type Flashcard struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Tags  []string `json:"tags"`
}
