// Package factbank serves fact-recall questions from static, curated pools.
package factbank

import (
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// Generator draws questions from a fixed pool. Pool entries keep the
// correct answer at index 0; every draw shuffles both the pool and each
// question's options.
type Generator struct {
	subject question.Subject
	pool    []question.Question
	src     random.Source
}

// New returns a Generator over pool. The pool is never modified.
func New(subject question.Subject, pool []question.Question, src random.Source) *Generator {
	if src == nil {
		src = random.Default()
	}
	return &Generator{subject: subject, pool: pool, src: src}
}

// Subject returns the subject this generator serves.
func (g *Generator) Subject() question.Subject { return g.subject }

// Generate returns up to amount questions, fewer if the pool is smaller.
func (g *Generator) Generate(amount int) []question.Question {
	if amount <= 0 {
		return []question.Question{}
	}
	picked := random.Shuffle(g.src, g.pool)
	if amount < len(picked) {
		picked = picked[:amount]
	}
	out := make([]question.Question, len(picked))
	for i, q := range picked {
		out[i] = question.Reshuffle(g.src, q)
	}
	return out
}

// Pool returns a copy of the pool for subject, or nil for subjects that are
// not fact-recall subjects.
func Pool(subject question.Subject) []question.Question {
	var pool []question.Question
	switch subject {
	case question.SubjectScience:
		pool = sciencePool
	case question.SubjectHistory:
		pool = historyPool
	case question.SubjectEconomics:
		pool = economicsPool
	case question.SubjectComputing:
		pool = computingPool
	default:
		return nil
	}
	out := make([]question.Question, len(pool))
	for i, q := range pool {
		out[i] = q.Clone()
	}
	return out
}

// Subjects lists the subjects backed by a static pool.
func Subjects() []question.Subject {
	return []question.Subject{
		question.SubjectScience,
		question.SubjectHistory,
		question.SubjectComputing,
		question.SubjectEconomics,
	}
}

// ForSubject is a convenience for New(subject, Pool(subject), src).
func ForSubject(subject question.Subject, src random.Source) *Generator {
	return New(subject, Pool(subject), src)
}

func q(id, category, text string, options ...string) question.Question {
	return question.Question{
		ID:            id,
		Text:          text,
		Options:       options,
		CorrectAnswer: 0,
		Category:      category,
	}
}
