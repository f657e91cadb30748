package problemgen

import (
	"fmt"
	"strings"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// QuadraticRoots asks for the integer roots of a monic quadratic built as
// (x - r1)(x - r2).
func QuadraticRoots(src random.Source) question.Question {
	r1 := random.Int(src, -5, 5)
	r2 := random.Int(src, -5, 5)
	b := -(r1 + r2)
	c := r1 * r2

	text := fmt.Sprintf("Find the roots of: %s = 0", polynomial(b, c))
	correct := roots(r1, r2)

	distractors := uniqueExcluding(correct, []string{
		roots(-r1, -r2),
		roots(r1, -r2),
		roots(r1+1, r2-1),
	})
	for len(distractors) < 3 {
		candidate := roots(random.Int(src, -9, 9), random.Int(src, -9, 9))
		distractors = uniqueExcluding(correct, append(distractors, candidate))
	}
	return build(src, "alg-roots", CategoryAlgebra, text, correct, distractors[:3])
}

// ComplexMultiplication asks for (a1 + b1 i)(a2 + b2 i) in a + bi form.
func ComplexMultiplication(src random.Source) question.Question {
	a1 := random.Int(src, 1, 5)
	b1 := random.Int(src, 1, 5)
	a2 := random.Int(src, 1, 5)
	b2 := random.Int(src, 1, 5)

	re := a1*a2 - b1*b2
	im := a1*b2 + b1*a2

	text := fmt.Sprintf("Simplify: (%d + %di)(%d + %di)", a1, b1, a2, b2)
	correct := complexString(re, im)
	distractors := []string{
		complexString(a1*a2+b1*b2, im), // treated i^2 as +1
		complexString(re, a1*b2-b1*a2),
		complexString(a1*a2, b1*b2), // multiplied term by term
	}
	return build(src, "alg-complex", CategoryAlgebra, text, correct, distractors)
}

// roots renders a root pair smallest first so equal sets compare equal.
func roots(r1, r2 int) string {
	return fmt.Sprintf("%d, %d", min(r1, r2), max(r1, r2))
}

func complexString(re, im int) string {
	return strings.Replace(fmt.Sprintf("%d + %di", re, im), "+ -", "- ", 1)
}

// uniqueExcluding drops duplicates and any candidate equal to exclude,
// preserving first-seen order.
func uniqueExcluding(exclude string, candidates []string) []string {
	seen := map[string]bool{exclude: true}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
