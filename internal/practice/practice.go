// Package practice dispatches question requests to per-subject sources and
// assembles practice tests.
package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkritika/cortex/internal/factbank"
	"github.com/pkritika/cortex/internal/problemgen"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// TestSize is the number of questions in a generated practice test.
const TestSize = 5

// ErrNotFound means neither generation nor the static fallback produced a test.
var ErrNotFound = errors.New("practice test not found")

// Source yields questions for one subject.
type Source interface {
	Questions(ctx context.Context, amount int) []question.Question
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, amount int) []question.Question

func (f SourceFunc) Questions(ctx context.Context, amount int) []question.Question {
	return f(ctx, amount)
}

// Generator is a synchronous, local question generator.
type Generator interface {
	Generate(amount int) []question.Question
}

// Local wraps a Generator as a Source.
func Local(g Generator) Source {
	return SourceFunc(func(_ context.Context, amount int) []question.Question {
		return g.Generate(amount)
	})
}

// Sources maps every subject to its question source.
type Sources map[question.Subject]Source

// LocalSources returns the procedural math engine plus the four fact pools.
func LocalSources(src random.Source) Sources {
	s := Sources{question.SubjectMath: Local(problemgen.NewEngine(src))}
	for _, subject := range factbank.Subjects() {
		s[subject] = Local(factbank.ForSubject(subject, src))
	}
	return s
}

// Validate reports subjects without a source.
func (s Sources) Validate() error {
	var missing []question.Subject
	for _, subject := range question.AllSubjects() {
		if s[subject] == nil {
			missing = append(missing, subject)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no question source for subjects %v", missing)
	}
	return nil
}

// FallbackTests supplies static tests when generation returns nothing.
type FallbackTests interface {
	PracticeTest(subject question.Subject) (question.Quiz, bool)
}

// Service assembles quizzes from the registered sources.
type Service struct {
	sources  Sources
	fallback FallbackTests
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides time.Now for quiz IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService fails unless every subject has a source. fallback may be nil.
func NewService(sources Sources, fallback FallbackTests, opts ...Option) (*Service, error) {
	if err := sources.Validate(); err != nil {
		return nil, err
	}
	s := &Service{sources: sources, fallback: fallback, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Questions returns up to amount questions for a subject name. Unknown
// subjects yield an empty slice.
func (s *Service) Questions(ctx context.Context, subject string, amount int) []question.Question {
	sub, err := question.ParseSubject(subject)
	if err != nil || amount <= 0 {
		return []question.Question{}
	}
	qs := s.sources[sub].Questions(ctx, amount)
	if qs == nil {
		return []question.Question{}
	}
	return qs
}

// PracticeTest builds a TestSize-question quiz for subject, falling back to
// the static test for that subject.
func (s *Service) PracticeTest(ctx context.Context, subject string) (question.Quiz, error) {
	sub, err := question.ParseSubject(subject)
	if err != nil {
		return question.Quiz{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if qs := s.Questions(ctx, string(sub), TestSize); len(qs) > 0 {
		return question.Quiz{
			ID:        fmt.Sprintf("pt-%s-%d", sub, s.now().UnixMilli()),
			Title:     sub.DisplayName() + " Practice Test",
			Questions: qs,
		}, nil
	}

	if s.fallback != nil {
		if quiz, ok := s.fallback.PracticeTest(sub); ok {
			return quiz, nil
		}
	}
	return question.Quiz{}, fmt.Errorf("%w: %s", ErrNotFound, sub)
}
