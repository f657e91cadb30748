package problemgen

import (
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// Engine produces a batch of math questions, choosing a family uniformly at
// random for every question.
type Engine struct {
	src      random.Source
	families []Family
}

// NewEngine returns an Engine over every family.
func NewEngine(src random.Source) *Engine {
	if src == nil {
		src = random.Default()
	}
	return &Engine{src: src, families: Families()}
}

// Subject returns question.SubjectMath.
func (e *Engine) Subject() question.Subject { return question.SubjectMath }

// Generate returns exactly amount questions, or none when amount <= 0.
// Family draws are independent, so a batch is not balanced across families.
func (e *Engine) Generate(amount int) []question.Question {
	if amount <= 0 {
		return []question.Question{}
	}
	out := make([]question.Question, 0, amount)
	for range amount {
		f := random.Pick(e.src, e.families)
		out = append(out, f.Generate(e.src))
	}
	return out
}
