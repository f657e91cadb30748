// Package store persists test results and course progress.
//
// Three backends implement Store: an in-process memory store, a SQL store
// (SQLite or MySQL through ent's dialect builders) and a Redis store.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownDriver is returned by Open for an unrecognised driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// CategoryTally counts answers within one "<Subject>: <Topic>" category.
type CategoryTally struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// TestResult is one submitted practice test.
type TestResult struct {
	UserID            string                   `json:"userId"`
	Subject           string                   `json:"subject"`
	Score             int                      `json:"score"`
	TotalQuestions    int                      `json:"totalQuestions"`
	Timestamp         time.Time                `json:"timestamp"`
	CategoryBreakdown map[string]CategoryTally `json:"categoryBreakdown,omitempty"`
}

// Progress records the last video a user watched. One record per user.
type Progress struct {
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	VideoID   string    `json:"videoId"`
	Timestamp time.Time `json:"timestamp"`
}

// ResultRepo stores results append-only.
type ResultRepo interface {
	// AppendResult records r. Results are never updated or deleted.
	AppendResult(ctx context.Context, r TestResult) error

	// ResultsForUser returns userID's results in insertion order.
	ResultsForUser(ctx context.Context, userID string) ([]TestResult, error)

	// AllResults returns every result in insertion order.
	AllResults(ctx context.Context) ([]TestResult, error)
}

// ProgressRepo keeps the latest progress record per user.
type ProgressRepo interface {
	// SaveProgress replaces any existing record for p.UserID.
	SaveProgress(ctx context.Context, p Progress) error

	// GetProgress returns nil when the user has no record.
	GetProgress(ctx context.Context, userID string) (*Progress, error)
}

// Store is a complete persistence backend.
type Store interface {
	ResultRepo
	ProgressRepo
	Close() error
}

func cloneResult(r TestResult) TestResult {
	if r.CategoryBreakdown != nil {
		m := make(map[string]CategoryTally, len(r.CategoryBreakdown))
		for k, v := range r.CategoryBreakdown {
			m[k] = v
		}
		r.CategoryBreakdown = m
	}
	return r
}
