// Package deck packages flashcard sets into Anki-importable artifacts.
package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/coach/internal/assess"
)

// TSVPackager writes decks as tab-separated text files, the format Anki's
// plain-text importer accepts directly (front TAB back TAB tags).
type TSVPackager struct {
	dir string
}

// NewTSVPackager creates a packager writing decks under dir.
func NewTSVPackager(dir string) *TSVPackager {
	return &TSVPackager{dir: dir}
}

// PackageDeck writes the cards to a deck file and returns its path.
func (p *TSVPackager) PackageDeck(deckName string, cards []assess.Flashcard) (string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("create deck dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("#separator:tab\n")
	b.WriteString("#html:false\n")
	b.WriteString(fmt.Sprintf("#deck:%s\n", sanitizeField(deckName)))
	b.WriteString("#columns:front\tback\ttags\n")

	for _, c := range cards {
		b.WriteString(sanitizeField(c.Front))
		b.WriteByte('\t')
		b.WriteString(sanitizeField(c.Back))
		b.WriteByte('\t')
		b.WriteString(sanitizeField(strings.Join(c.Tags, " ")))
		b.WriteByte('\n')
	}

	path := filepath.Join(p.dir, fileName(deckName))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write deck: %w", err)
	}
	return path, nil
}

// sanitizeField strips the characters that would break the TSV layout.
func sanitizeField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r\n", " / ")
	s = strings.ReplaceAll(s, "\n", " / ")
	return s
}

// fileName derives a filesystem-safe deck file name.
func fileName(deckName string) string {
	var b strings.Builder
	for _, r := range deckName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "deck"
	}
	return "deck_" + name + ".txt"
}
