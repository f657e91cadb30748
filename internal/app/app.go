// Package app assembles the services behind the HTTP server and the CLI
// from a loaded configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkritika/cortex/internal/auth"
	"github.com/pkritika/cortex/internal/catalog"
	"github.com/pkritika/cortex/internal/config"
	"github.com/pkritika/cortex/internal/flashcards"
	"github.com/pkritika/cortex/internal/llm"
	"github.com/pkritika/cortex/internal/oracle"
	"github.com/pkritika/cortex/internal/practice"
	"github.com/pkritika/cortex/internal/problemgen"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
	"github.com/pkritika/cortex/internal/store"
)

// App holds the wired services. Close releases the store.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Store      store.Store
	Catalog    *catalog.Catalog
	Oracle     *oracle.Adapter
	Practice   *practice.Service
	Flashcards *flashcards.Deck
	Auth       *auth.Service
}

// New opens the configured store and builds every service on top of it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	src := random.Default()
	solver := NewSolver(ctx, cfg, logger)
	adapter := oracle.NewAdapter(solver, problemgen.NewEngine(src), oracle.Options{
		Timeout: cfg.OracleTimeout,
		Source:  src,
		Logger:  logger,
	})

	sources := practice.LocalSources(src)
	sources[question.SubjectMath] = practice.SourceFunc(adapter.GenerateQuestions)
	svc, err := practice.NewService(sources, cat)
	if err != nil {
		st.Close()
		return nil, err
	}

	// Flashcards never go through the oracle.
	deck, err := flashcards.NewDeck(practice.LocalSources(src), src)
	if err != nil {
		st.Close()
		return nil, err
	}

	logger.Info("services ready",
		"store", cfg.Store.Driver,
		"oracle", adapter.SolverName(),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      st,
		Catalog:    cat,
		Oracle:     adapter,
		Practice:   svc,
		Flashcards: deck,
		Auth:       auth.NewService(cfg.JWTSecret),
	}, nil
}

// NewSolver returns the configured oracle solver, or nil when the oracle is
// not configured. Misconfiguration is logged and treated as "not configured"
// so math questions still come from the local engine.
func NewSolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) oracle.Solver {
	switch cfg.Oracle {
	case config.OracleLLM:
		p, err := llm.NewProvider(ctx, cfg.LLM, logger)
		if err != nil {
			logger.Warn("llm oracle unavailable, using local math generation", "err", err)
			return nil
		}
		return oracle.NewLLMSolver(p)
	default:
		if !oracle.Configured(cfg.WolframAppID) {
			return nil
		}
		s, err := oracle.NewWolframSolver(cfg.WolframAppID)
		if err != nil {
			logger.Warn("wolfram oracle unavailable, using local math generation", "err", err)
			return nil
		}
		return s
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
