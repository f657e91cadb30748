// Package problemgen procedurally generates calculus and algebra questions
// whose distractors come from the mistakes students typically make.
package problemgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

const (
	CategoryCalculus = "Math: Calculus"
	CategoryAlgebra  = "Math: Algebra"
)

// Family is one kind of procedurally generated problem.
type Family struct {
	// Name doubles as the question ID prefix, e.g. "calc-power".
	Name     string
	Generate func(src random.Source) question.Question
}

// Families returns every problem family in a stable order.
func Families() []Family {
	return []Family{
		{Name: "calc-power", Generate: PowerRuleDerivative},
		{Name: "calc-trig", Generate: TrigDerivative},
		{Name: "calc-int", Generate: PowerRuleIntegral},
		{Name: "alg-roots", Generate: QuadraticRoots},
		{Name: "alg-complex", Generate: ComplexMultiplication},
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// build assembles a question from its correct answer and distractors and
// shuffles the options.
func build(src random.Source, prefix, category, text, correct string, distractors []string) question.Question {
	return question.NewShuffled(src, newID(prefix), text, category, correct, distractors)
}
