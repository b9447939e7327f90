package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/coach/internal/llm"
)

// Journal is the SQLite-backed record of provider calls. It implements
// llm.Journal for appends and serves the usage queries behind
// `coach llm stats`.
type Journal struct {
	db *sql.DB
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS llm_calls (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    TEXT NOT NULL,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	latency_ms    INTEGER NOT NULL,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_llm_calls_model ON llm_calls (model);
CREATE INDEX IF NOT EXISTS idx_llm_calls_purpose ON llm_calls (purpose);
`

func migrateJournal(db *sql.DB) error {
	_, err := db.Exec(journalSchema)
	return err
}

// Append records one provider call.
func (j *Journal) Append(ctx context.Context, e llm.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO llm_calls
			(created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), e.Provider, e.Model, e.Purpose,
		e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// Call is one journaled provider call.
type Call struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Recent returns the most recent calls, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Call, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, created_at, provider, model, purpose,
		       input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent calls: %w", err)
	}
	defer rows.Close()

	var calls []Call
	for rows.Next() {
		var c Call
		var created string
		if err := rows.Scan(&c.ID, &created, &c.Provider, &c.Model, &c.Purpose,
			&c.InputTokens, &c.OutputTokens, &c.LatencyMs, &c.Success, &c.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, created)
		calls = append(calls, c)
	}
	return calls, rows.Err()
}

// Usage aggregates token counts for one grouping key.
type Usage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// UsageByModel aggregates journaled usage per model.
func (j *Journal) UsageByModel(ctx context.Context) ([]Usage, error) {
	return j.usage(ctx, "model")
}

// UsageByPurpose aggregates journaled usage per call purpose.
func (j *Journal) UsageByPurpose(ctx context.Context) ([]Usage, error) {
	return j.usage(ctx, "purpose")
}

func (j *Journal) usage(ctx context.Context, column string) ([]Usage, error) {
	// column is one of two compile-time constants, never user input.
	rows, err := j.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0)
		FROM llm_calls GROUP BY %s ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		if err := rows.Scan(&u.Key, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.Failures); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
