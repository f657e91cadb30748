// Package oracle turns an external symbolic-math service into multiple-choice
// questions, falling back to local generation whenever the service is absent
// or fails.
package oracle

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotConfigured is returned when no solver credential is set.
	ErrNotConfigured = errors.New("oracle not configured")

	// ErrNotUnderstood means the solver answered but could not interpret the query.
	ErrNotUnderstood = errors.New("oracle did not understand the query")

	// ErrUnavailable covers transport failures, timeouts and unexpected statuses.
	ErrUnavailable = errors.New("oracle unavailable")
)

// PlaceholderAppID is the sample credential shipped in example env files.
const PlaceholderAppID = "your_app_id_here"

// Configured reports whether appID is a usable credential.
func Configured(appID string) bool {
	appID = strings.TrimSpace(appID)
	return appID != "" && appID != PlaceholderAppID
}

// Step is one titled block of a worked solution.
type Step struct {
	Title string
	Text  string
}

// Solution is what a Solver returns for a query.
type Solution struct {
	Answer string
	Steps  []Step
}

// Solver answers a natural-language math query.
type Solver interface {
	Solve(ctx context.Context, query string) (*Solution, error)
	Name() string

	// IDPrefix starts the ids of questions built from this solver's answers.
	IDPrefix() string
}
