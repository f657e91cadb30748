package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// DefaultTimeout bounds a single solver call.
const DefaultTimeout = 10 * time.Second

// LocalGenerator produces questions without the oracle.
type LocalGenerator interface {
	Generate(amount int) []question.Question
}

// Options tune an Adapter. Zero values pick defaults.
type Options struct {
	Timeout time.Duration
	Source  random.Source
	Logger  *slog.Logger
}

// Adapter builds math questions from a Solver and falls back to a local
// generator. A nil solver means the oracle is not configured.
type Adapter struct {
	solver     Solver
	local      LocalGenerator
	src        random.Source
	timeout    time.Duration
	logger     *slog.Logger
	validators []question.Validator
}

func NewAdapter(solver Solver, local LocalGenerator, opts Options) *Adapter {
	a := &Adapter{
		solver:     solver,
		local:      local,
		src:        opts.Source,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
		validators: []question.Validator{&question.StructuralValidator{}},
	}
	if a.src == nil {
		a.src = random.Default()
	}
	if a.timeout <= 0 {
		a.timeout = DefaultTimeout
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Configured reports whether a solver is available.
func (a *Adapter) Configured() bool { return a.solver != nil }

// SolverName returns the active solver's name, or "local".
func (a *Adapter) SolverName() string {
	if a.solver == nil {
		return "local"
	}
	return a.solver.Name()
}

// Solve forwards a raw query to the solver under the adapter's timeout.
func (a *Adapter) Solve(ctx context.Context, query string) (*Solution, error) {
	if a.solver == nil {
		return nil, ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	sol, err := a.solver.Solve(ctx, query)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrUnavailable) {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return sol, err
}

// GenerateQuestion asks the solver one templated problem and turns the
// answer into a validated question.
func (a *Adapter) GenerateQuestion(ctx context.Context) (*question.Question, error) {
	if a.solver == nil {
		return nil, ErrNotConfigured
	}

	p := random.Pick(a.src, templates).fill(a.src)
	sol, err := a.Solve(ctx, p.Query)
	if err != nil {
		return nil, fmt.Errorf("solve %q: %w", p.Query, err)
	}

	q := question.NewShuffled(a.src, a.solver.IDPrefix()+"-"+uuid.NewString(), p.Text, p.category, sol.Answer,
		distractors(a.src, sol.Answer, p.category))
	q.Explanation = explanation(p, sol)

	if err := question.Validate(&q, a.validators...); err != nil {
		return nil, fmt.Errorf("question for %q: %w", p.Query, err)
	}
	return &q, nil
}

// GenerateQuestions makes amount sequential oracle attempts and keeps the
// successes in shuffled order. It uses the local generator when the oracle is
// not configured or every attempt failed.
func (a *Adapter) GenerateQuestions(ctx context.Context, amount int) []question.Question {
	if amount <= 0 {
		return []question.Question{}
	}
	if a.solver == nil {
		return a.local.Generate(amount)
	}

	var got []question.Question
	for range amount {
		if ctx.Err() != nil {
			break
		}
		q, err := a.GenerateQuestion(ctx)
		if err != nil {
			a.logger.WarnContext(ctx, "oracle question discarded", "solver", a.solver.Name(), "error", err)
			continue
		}
		got = append(got, *q)
	}

	if len(got) == 0 {
		a.logger.WarnContext(ctx, "oracle produced no questions, using local generator", "solver", a.solver.Name())
		return a.local.Generate(amount)
	}
	return random.Shuffle(a.src, got)
}
