package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/plan"
)

var (
	// ErrNotInitialized is returned when a project has no saved goal yet.
	ErrNotInitialized = errors.New("project has no learning goal")
	// ErrNoActiveMilestone is returned when every milestone is complete.
	ErrNoActiveMilestone = errors.New("all milestones complete")
)

// Project is the per-project persistence contract the engine drives.
// Absent documents are reported as nil values, not errors: a missing goal
// is a legitimate "not initialized" state and a missing pinned quiz is a
// legitimate "nothing pinned" state.
//
// Lock serializes read-mutate-write sequences for one project; concurrent
// engines on different projects never contend.
type Project interface {
	Lock()
	Unlock()

	LoadGoal(ctx context.Context) (*plan.LearningGoal, error)
	SaveGoal(ctx context.Context, goal *plan.LearningGoal) error

	LoadProfile(ctx context.Context) (*Profile, error)
	SaveProfile(ctx context.Context, profile *Profile) error

	LoadQuiz(ctx context.Context, kind assess.Kind) ([]assess.Question, error)
	SaveQuiz(ctx context.Context, kind assess.Kind, questions []assess.Question) error
	DeleteQuiz(ctx context.Context, kind assess.Kind) error

	LoadFlashcards(ctx context.Context, key string) ([]assess.Flashcard, error)
	SaveFlashcards(ctx context.Context, key string, cards []assess.Flashcard) error
}

// Examiner produces question sets.
type Examiner interface {
	GenerateDiagnostic(ctx context.Context, goal *plan.LearningGoal) ([]assess.Question, error)
	GenerateExam(ctx context.Context, milestone plan.Milestone, history []assess.AssessmentResult) ([]assess.Question, error)
}

// Grader evaluates submissions.
type Grader interface {
	EvaluateSubmission(ctx context.Context, questions []assess.Question, answers []string) (*assess.AssessmentResult, error)
}

// CardSource produces flashcard sets.
type CardSource interface {
	GenerateMilestone(ctx context.Context, milestone plan.Milestone) ([]assess.Flashcard, error)
	GenerateRemediation(ctx context.Context, milestone plan.Milestone, result assess.AssessmentResult) ([]assess.Flashcard, error)
}

// Packager writes a named deck of flashcards to an importable file.
type Packager interface {
	PackageDeck(deckName string, cards []assess.Flashcard) (string, error)
}

// Config tunes the engine.
type Config struct {
	// PassThreshold is the minimum score, inclusive, that completes a
	// milestone.
	PassThreshold float64
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{PassThreshold: 0.8}
}

// Engine owns milestone progression. All state transitions on the learner
// profile go through it; callers read state and render, the engine decides.
type Engine struct {
	examiner Examiner
	grader   Grader
	cards    CardSource
	packager Packager
	cfg      Config
	log      *zap.Logger

	now func() time.Time
}

// NewEngine wires a progression engine. A nil logger disables logging.
func NewEngine(examiner Examiner, grader Grader, cards CardSource, packager Packager, cfg Config, log *zap.Logger) *Engine {
	if cfg.PassThreshold <= 0 {
		cfg.PassThreshold = DefaultConfig().PassThreshold
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		examiner: examiner,
		grader:   grader,
		cards:    cards,
		packager: packager,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// PassThreshold returns the effective milestone pass score.
func (e *Engine) PassThreshold() float64 {
	return e.cfg.PassThreshold
}

// State reports the learner's current phase for the project.
func (e *Engine) State(ctx context.Context, proj Project) (State, error) {
	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return State{}, err
	}
	return EvaluateState(goal, profile), nil
}

// ActiveMilestone returns the first not-yet-completed milestone, or
// ErrNoActiveMilestone when the goal is fully complete.
func (e *Engine) ActiveMilestone(ctx context.Context, proj Project) (*plan.Milestone, error) {
	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return nil, err
	}
	st := EvaluateState(goal, profile)
	if st.Active == nil {
		return nil, ErrNoActiveMilestone
	}
	return st.Active, nil
}

// StartDiagnostic generates the baseline question set and pins it so the
// grading step sees exactly the questions the learner answered.
func (e *Engine) StartDiagnostic(ctx context.Context, proj Project) ([]assess.Question, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, err := e.requireGoal(ctx, proj)
	if err != nil {
		return nil, err
	}
	questions, err := e.examiner.GenerateDiagnostic(ctx, goal)
	if err != nil {
		return nil, err
	}
	if err := proj.SaveQuiz(ctx, assess.KindDiagnostic, questions); err != nil {
		return nil, fmt.Errorf("pinning diagnostic: %w", err)
	}
	return questions, nil
}

// SubmitDiagnostic grades the pinned diagnostic and records the result as
// the baseline entry in the assessment history. Grading never blocks on a
// missing pinned set: the engine regenerates and logs the inconsistency.
func (e *Engine) SubmitDiagnostic(ctx context.Context, proj Project, answers []string) (*assess.AssessmentResult, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return nil, err
	}
	questions, err := proj.LoadQuiz(ctx, assess.KindDiagnostic)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		e.log.Warn("no pinned diagnostic at grading time, regenerating",
			zap.String("goal", goal.SmartGoal))
		if questions, err = e.examiner.GenerateDiagnostic(ctx, goal); err != nil {
			return nil, err
		}
	}

	result, err := e.grader.EvaluateSubmission(ctx, questions, answers)
	if err != nil {
		return nil, err
	}
	profile.AssessmentHistory = append(profile.AssessmentHistory, *result)
	if err := proj.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	if err := proj.DeleteQuiz(ctx, assess.KindDiagnostic); err != nil {
		e.log.Warn("could not clear graded diagnostic", zap.Error(err))
	}
	return result, nil
}

// Materialize produces study materials for the active milestone: a
// flashcard set and a packaged deck file. It is idempotent within one
// attempt; a previously generated set is reused rather than regenerated,
// so re-running study after a failed exam does not burn provider calls.
func (e *Engine) Materialize(ctx context.Context, proj Project) (string, []assess.Flashcard, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return "", nil, err
	}
	st := EvaluateState(goal, profile)
	if st.Active == nil {
		return "", nil, ErrNoActiveMilestone
	}
	milestone := *st.Active

	cards, err := proj.LoadFlashcards(ctx, milestone.ID)
	if err != nil {
		return "", nil, err
	}
	if cards != nil && profile.CurrentDeckPath != "" {
		return profile.CurrentDeckPath, cards, nil
	}
	if cards == nil {
		if cards, err = e.cards.GenerateMilestone(ctx, milestone); err != nil {
			return "", nil, err
		}
		if err := proj.SaveFlashcards(ctx, milestone.ID, cards); err != nil {
			return "", nil, err
		}
	}

	deckName := fmt.Sprintf("%s - %s", goal.SmartGoal, milestone.Title)
	deckPath, err := e.packager.PackageDeck(deckName, cards)
	if err != nil {
		return "", nil, err
	}

	started := e.now()
	profile.CurrentDeckPath = deckPath
	profile.MilestoneStartDate = &started
	if err := proj.SaveProfile(ctx, profile); err != nil {
		return "", nil, err
	}
	return deckPath, cards, nil
}

// StartExam generates the exam for the active milestone, weaving in
// active-recall questions drawn from past missed concepts, and pins the
// set before returning it.
func (e *Engine) StartExam(ctx context.Context, proj Project) ([]assess.Question, *plan.Milestone, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return nil, nil, err
	}
	st := EvaluateState(goal, profile)
	if st.Active == nil {
		return nil, nil, ErrNoActiveMilestone
	}
	questions, err := e.examiner.GenerateExam(ctx, *st.Active, profile.AssessmentHistory)
	if err != nil {
		return nil, nil, err
	}
	if err := proj.SaveQuiz(ctx, assess.KindExam, questions); err != nil {
		return nil, nil, fmt.Errorf("pinning exam: %w", err)
	}
	return questions, st.Active, nil
}

// Outcome is the result of grading an exam submission.
type Outcome struct {
	Result    *assess.AssessmentResult
	Milestone plan.Milestone
	Passed    bool
	// AllComplete is true when the passed milestone was the last one.
	AllComplete bool
}

// SubmitExam grades the pinned exam for the active milestone and applies
// the progression rules: the result is always appended to history; on a
// passing score the milestone is marked complete, the in-progress markers
// are cleared, and the pinned question set is invalidated. The whole
// updated profile is persisted in a single write.
func (e *Engine) SubmitExam(ctx context.Context, proj Project, answers []string) (*Outcome, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return nil, err
	}
	st := EvaluateState(goal, profile)
	if st.Active == nil {
		return nil, ErrNoActiveMilestone
	}
	milestone := *st.Active

	questions, err := proj.LoadQuiz(ctx, assess.KindExam)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		e.log.Warn("no pinned exam at grading time, regenerating",
			zap.String("milestone", milestone.Title))
		if questions, err = e.examiner.GenerateExam(ctx, milestone, profile.AssessmentHistory); err != nil {
			return nil, err
		}
	}

	result, err := e.grader.EvaluateSubmission(ctx, questions, answers)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Result: result, Milestone: milestone, Passed: result.Score >= e.cfg.PassThreshold}
	profile.AssessmentHistory = append(profile.AssessmentHistory, *result)
	if out.Passed {
		if !profile.HasCompleted(milestone.ID) {
			profile.CompletedMilestones = append(profile.CompletedMilestones, milestone.ID)
		}
		profile.CurrentMilestoneIndex = len(profile.CompletedMilestones)
		profile.CurrentDeckPath = ""
		profile.MilestoneStartDate = nil
		out.AllComplete = EvaluateState(goal, profile).Active == nil
	}
	if err := proj.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	if out.Passed {
		if err := proj.DeleteQuiz(ctx, assess.KindExam); err != nil {
			e.log.Warn("could not invalidate passed exam", zap.Error(err))
		}
	}
	return out, nil
}

// Remediate generates a focused flashcard set for the weak areas on the
// most recent failed exam. It is a no-op when the latest result meets the
// pass threshold; progression state is never advanced here.
func (e *Engine) Remediate(ctx context.Context, proj Project) (string, []assess.Flashcard, error) {
	proj.Lock()
	defer proj.Unlock()

	goal, profile, err := e.load(ctx, proj)
	if err != nil {
		return "", nil, err
	}
	latest := profile.LatestResult()
	if latest == nil || latest.Score >= e.cfg.PassThreshold {
		return "", nil, nil
	}
	st := EvaluateState(goal, profile)
	if st.Active == nil {
		return "", nil, nil
	}
	milestone := *st.Active

	cards, err := e.cards.GenerateRemediation(ctx, milestone, *latest)
	if err != nil {
		return "", nil, err
	}
	if err := proj.SaveFlashcards(ctx, "remediation-"+milestone.ID, cards); err != nil {
		return "", nil, err
	}
	deckPath, err := e.packager.PackageDeck("REMEDIATION: "+milestone.Title, cards)
	if err != nil {
		return "", nil, err
	}

	started := e.now()
	profile.CurrentDeckPath = deckPath
	profile.MilestoneStartDate = &started
	if err := proj.SaveProfile(ctx, profile); err != nil {
		return "", nil, err
	}
	return deckPath, cards, nil
}

func (e *Engine) load(ctx context.Context, proj Project) (*plan.LearningGoal, *Profile, error) {
	goal, err := e.requireGoal(ctx, proj)
	if err != nil {
		return nil, nil, err
	}
	profile, err := proj.LoadProfile(ctx)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		profile = NewProfile()
	}
	if profile.CurrentMilestoneIndex != len(profile.CompletedMilestones) {
		e.log.Warn("profile milestone index out of step with completed set, repairing",
			zap.Int("index", profile.CurrentMilestoneIndex),
			zap.Int("completed", len(profile.CompletedMilestones)))
		profile.CurrentMilestoneIndex = len(profile.CompletedMilestones)
	}
	return goal, profile, nil
}

func (e *Engine) requireGoal(ctx context.Context, proj Project) (*plan.LearningGoal, error) {
	goal, err := proj.LoadGoal(ctx)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrNotInitialized
	}
	return goal, nil
}
