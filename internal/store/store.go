package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the flat-file project store plus the SQLite call journal. Each
// (user, project) pair maps to a directory of JSON documents under the
// data root; the journal database lives beside them.
type Store struct {
	root string
	db   *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open initializes a store rooted at dataDir, creating the directory and
// the journal database as needed.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "coach.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrateJournal(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	s := &Store{root: dataDir, db: db, locks: make(map[string]*sync.Mutex)}
	if err := s.migrateLegacyLayout(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Root returns the data directory this store is rooted at.
func (s *Store) Root() string {
	return s.root
}

// Journal returns the SQLite-backed provider call journal.
func (s *Store) Journal() *Journal {
	return &Journal{db: s.db}
}

// Close closes the journal database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Project returns the handle for one (user, project) pair. Handles for the
// same pair share a mutex, so read-mutate-write sequences through any of
// them are serialized.
func (s *Store) Project(userID, name string) *Project {
	key := SanitizeID(userID) + "/" + SanitizeID(name)

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	return &Project{
		dir: filepath.Join(s.root, "projects", SanitizeID(userID), SanitizeID(name)),
		mu:  lock,
	}
}

// ListProjects returns the sanitized project names that exist for a user,
// sorted. A user with no projects yields an empty slice.
func (s *Store) ListProjects(userID string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "projects", SanitizeID(userID)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// SanitizeID maps an arbitrary user or project name to a filesystem-safe
// path segment: lowercased, runs of non-alphanumerics collapsed to a
// single underscore. Empty input maps to "default".
func SanitizeID(id string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(id)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "default"
	}
	return out
}

// DefaultDataDir resolves the data directory in priority order:
// 1. COACH_DATA environment variable
// 2. $XDG_DATA_HOME/coach
// 3. ~/.local/share/coach
func DefaultDataDir() (string, error) {
	if p := os.Getenv("COACH_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coach"), nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
