package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// migrateLegacyLayout moves pre-multi-project data into place. The old
// layout kept one implicit project per user directly under the data root
// (<root>/<user>/learning_goal.json); those documents move to the
// "default" project (<root>/projects/<user>/default/). Migration is a
// one-way rename, run once per legacy user directory found.
func (s *Store) migrateLegacyLayout() error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("scan data dir: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "projects" || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		legacyDir := filepath.Join(s.root, e.Name())
		if _, err := os.Stat(filepath.Join(legacyDir, goalFile)); err != nil {
			continue
		}

		destDir := filepath.Join(s.root, "projects", e.Name(), "default")
		if _, err := os.Stat(destDir); err == nil {
			// Already migrated for this user; leave the legacy copy alone.
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destDir), 0o755); err != nil {
			return fmt.Errorf("migrate %s: %w", e.Name(), err)
		}
		if err := os.Rename(legacyDir, destDir); err != nil {
			return fmt.Errorf("migrate %s: %w", e.Name(), err)
		}
	}
	return nil
}
