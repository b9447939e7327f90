package deck

import (
	"os"
	"strings"
	"testing"

	"github.com/abhisek/coach/internal/assess"
)

func TestPackageDeck(t *testing.T) {
	p := NewTSVPackager(t.TempDir())

	cards := []assess.Flashcard{
		{Front: "Bonjour", Back: "Hello", Tags: []string{"greetings", "Basic"}},
		{Front: "multi\nline", Back: "has\ttab", Tags: nil},
	}
	path, err := p.PackageDeck("Learn French - Survival phrases", cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read deck: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if lines[0] != "#separator:tab" {
		t.Fatalf("expected separator header, got %q", lines[0])
	}
	if lines[2] != "#deck:Learn French - Survival phrases" {
		t.Fatalf("expected deck name header, got %q", lines[2])
	}
	if lines[4] != "Bonjour\tHello\tgreetings Basic" {
		t.Fatalf("unexpected first card row: %q", lines[4])
	}
	// Embedded newlines and tabs must not break the layout.
	if got := strings.Count(lines[5], "\t"); got != 2 {
		t.Fatalf("expected 2 tabs in sanitized row, got %d: %q", got, lines[5])
	}
	if !strings.Contains(lines[5], "multi / line") {
		t.Fatalf("expected newline folded into separator, got %q", lines[5])
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Learn French - Survival phrases", "deck_Learn_French_-_Survival_phrases.txt"},
		{"REMEDIATION: Ordering food", "deck_REMEDIATION_Ordering_food.txt"},
		{"///", "deck_deck.txt"},
	}
	for _, tc := range cases {
		if got := fileName(tc.in); got != tc.want {
			t.Fatalf("fileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
