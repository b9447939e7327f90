package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// JournalEntry captures one provider call for the usage journal.
type JournalEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Journal records provider calls. Implemented by the store's SQLite journal.
type Journal interface {
	Append(ctx context.Context, entry JournalEntry) error
}

// JournalProvider is a decorator that records every generation call.
type JournalProvider struct {
	inner   Provider
	journal Journal
}

// WithJournal wraps a Provider with call journaling.
func WithJournal(p Provider, j Journal) Provider {
	return &JournalProvider{inner: p, journal: j}
}

func (l *JournalProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	entry := JournalEntry{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Model = resp.Model
	}

	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Journal failures never fail the request itself.
	if jErr := l.journal.Append(ctx, entry); jErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal provider call: %v\n", jErr)
	}

	return resp, err
}

func (l *JournalProvider) ModelID() string {
	return l.inner.ModelID()
}
