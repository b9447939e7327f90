package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/progress"
)

// Document file names within a project directory. The goal and profile
// names match the legacy cache layout so migrated projects keep working.
const (
	goalFile    = "learning_goal.json"
	profileFile = "user_profile.json"
)

// Project is the document store for one (user, project) pair. Absent
// documents load as nil values; callers decide whether absence is an
// error. Writes go through a temp file and rename so a crash never leaves
// a half-written document behind.
type Project struct {
	dir string
	mu  *sync.Mutex
}

// Dir returns the project's directory under the data root.
func (p *Project) Dir() string {
	return p.dir
}

// Lock and Unlock serialize read-mutate-write sequences on this project.
func (p *Project) Lock()   { p.mu.Lock() }
func (p *Project) Unlock() { p.mu.Unlock() }

// Exists reports whether the project has been initialized with a goal.
func (p *Project) Exists() bool {
	_, err := os.Stat(filepath.Join(p.dir, goalFile))
	return err == nil
}

// LoadGoal returns the saved learning goal, or nil when none exists.
func (p *Project) LoadGoal(ctx context.Context) (*plan.LearningGoal, error) {
	var goal plan.LearningGoal
	ok, err := p.read(goalFile, &goal)
	if err != nil || !ok {
		return nil, err
	}
	return &goal, nil
}

// SaveGoal persists the learning goal.
func (p *Project) SaveGoal(ctx context.Context, goal *plan.LearningGoal) error {
	return p.write(goalFile, goal)
}

// LoadProfile returns the saved learner profile, or nil when none exists.
func (p *Project) LoadProfile(ctx context.Context) (*progress.Profile, error) {
	var profile progress.Profile
	ok, err := p.read(profileFile, &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile persists the learner profile.
func (p *Project) SaveProfile(ctx context.Context, profile *progress.Profile) error {
	return p.write(profileFile, profile)
}

// LoadQuiz returns the pinned question set of the given kind, or nil when
// nothing is pinned.
func (p *Project) LoadQuiz(ctx context.Context, kind assess.Kind) ([]assess.Question, error) {
	var quiz assess.Quiz
	ok, err := p.read(quizFile(kind), &quiz)
	if err != nil || !ok {
		return nil, err
	}
	return quiz.Questions, nil
}

// SaveQuiz pins a question set of the given kind, replacing any previous one.
func (p *Project) SaveQuiz(ctx context.Context, kind assess.Kind, questions []assess.Question) error {
	return p.write(quizFile(kind), assess.Quiz{Kind: kind, Questions: questions})
}

// DeleteQuiz removes the pinned question set of the given kind. Deleting
// an absent set is not an error.
func (p *Project) DeleteQuiz(ctx context.Context, kind assess.Kind) error {
	err := os.Remove(filepath.Join(p.dir, quizFile(kind)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s quiz: %w", kind, err)
	}
	return nil
}

// LoadFlashcards returns the cached flashcard set for the key, or nil.
func (p *Project) LoadFlashcards(ctx context.Context, key string) ([]assess.Flashcard, error) {
	var cards []assess.Flashcard
	ok, err := p.read(flashcardFile(key), &cards)
	if err != nil || !ok {
		return nil, err
	}
	return cards, nil
}

// SaveFlashcards caches a flashcard set under the key.
func (p *Project) SaveFlashcards(ctx context.Context, key string, cards []assess.Flashcard) error {
	return p.write(flashcardFile(key), cards)
}

// ClearAll removes every document in the project.
func (p *Project) ClearAll() error {
	err := os.RemoveAll(p.dir)
	if err != nil {
		return fmt.Errorf("clear project: %w", err)
	}
	return nil
}

func quizFile(kind assess.Kind) string {
	return string(kind) + "_quiz.json"
}

func flashcardFile(key string) string {
	return "flashcards_" + SanitizeID(key) + ".json"
}

// read unmarshals the named document into v. The bool reports whether the
// document exists.
func (p *Project) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// write marshals v to a temp file and renames it into place.
func (p *Project) write(name string, v any) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(p.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(p.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
