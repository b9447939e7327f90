package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/coach/internal/assess"
	"github.com/abhisek/coach/internal/cards"
	"github.com/abhisek/coach/internal/deck"
	"github.com/abhisek/coach/internal/examiner"
	"github.com/abhisek/coach/internal/llm"
	"github.com/abhisek/coach/internal/plan"
	"github.com/abhisek/coach/internal/progress"
	"github.com/abhisek/coach/internal/recall"
	"github.com/abhisek/coach/internal/store"
)

// App assembles the store, provider, and services for one user/project
// session. Commands construct it once, use the pieces they need, and close it.
type App struct {
	Store   *store.Store
	Project *store.Project

	Provider llm.Provider
	Builder  *plan.Builder
	Grader   *assess.Grader
	Examiner *examiner.Service
	Cards    *cards.Service
	Engine   *progress.Engine

	Log *zap.Logger
}

// New wires an App from the config. The LLM provider comes from the
// configured provider section, falling back to standard API key discovery
// when none is selected explicitly.
func New(ctx context.Context, cfg Config) (*App, error) {
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	st, err := store.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log := NewLogger(dataDir)

	llmCfg := cfg.LLM
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			st.Close()
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		llmCfg = discovered
	}
	provider, err := llm.NewProvider(ctx, llmCfg, st.Journal())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("create provider: %w", err)
	}

	project := st.Project(cfg.UserID, cfg.Project)
	cardSvc := cards.NewService(provider, cards.DefaultConfig())
	examSvc := examiner.NewService(provider, recall.NewSelector(nil), examiner.DefaultConfig())
	grader := assess.NewGrader(provider, assess.DefaultGraderConfig())
	packager := deck.NewTSVPackager(project.Dir())

	return &App{
		Store:    st,
		Project:  project,
		Provider: provider,
		Builder:  plan.NewBuilder(provider, plan.DefaultConfig()),
		Grader:   grader,
		Examiner: examSvc,
		Cards:    cardSvc,
		Engine:   progress.NewEngine(examSvc, grader, cardSvc, packager, cfg.EngineConfig(), log),
		Log:      log,
	}, nil
}

// Close flushes the logger and closes the store.
func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.Store.Close()
}
