package problemgen

import (
	"fmt"
	"strings"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

// PowerRuleDerivative asks for d/dx of a·x^n.
func PowerRuleDerivative(src random.Source) question.Question {
	a := random.Int(src, 2, 9)
	n := random.Int(src, 2, 5)

	text := fmt.Sprintf("Find the derivative of f(x) = %dx^%d", a, n)
	correct := fmt.Sprintf("%dx^%d", a*n, n-1)
	distractors := []string{
		fmt.Sprintf("%dx^%d", a, n-1),   // forgot to multiply by n
		fmt.Sprintf("%dx^%d", a*n, n),   // forgot to decrement the power
		fmt.Sprintf("%dx^%d", a/n, n+1), // integrated instead
	}
	return build(src, "calc-power", CategoryCalculus, text, correct, distractors)
}

// TrigDerivative asks for d/dx of a·sin(bx) or a·cos(bx).
func TrigDerivative(src random.Source) question.Question {
	a := random.Int(src, 2, 5)
	b := random.Int(src, 2, 4)

	fn, deriv, sign, flipped := "sin", "cos", "", "-"
	if random.Bool(src) {
		fn, deriv, sign, flipped = "cos", "sin", "-", ""
	}

	text := fmt.Sprintf("Find the derivative of f(x) = %d%s(%dx)", a, fn, b)
	correct := fmt.Sprintf("%s%d%s(%dx)", sign, a*b, deriv, b)
	distractors := []string{
		fmt.Sprintf("%s%d%s(%dx)", flipped, a*b, deriv, b),
		fmt.Sprintf("%d%s(%dx)", a, deriv, b), // chain rule skipped
		fmt.Sprintf("%d%s(%dx)", a*b, fn, b),
	}
	return build(src, "calc-trig", CategoryCalculus, text, correct, distractors)
}

// PowerRuleIntegral asks for the antiderivative of coeff·x^n. The
// coefficient is a multiple of n+1 so the answer stays integral.
func PowerRuleIntegral(src random.Source) question.Question {
	n := random.Int(src, 1, 4)
	m := n + 1
	coeff := random.Int(src, 1, 5) * m

	text := fmt.Sprintf("Evaluate the integral: ∫ %dx^%d dx", coeff, n)
	correct := fmt.Sprintf("%dx^%d + C", coeff/m, m)
	distractors := []string{
		fmt.Sprintf("%dx^%d + C", coeff*n, n-1), // differentiated instead
		fmt.Sprintf("%dx^%d + C", coeff, m),
		fmt.Sprintf("%dx^%d + C", coeff/m, n),
	}
	return build(src, "calc-int", CategoryCalculus, text, correct, distractors)
}

// signedTerm renders "+ 3x" / "- 3x" for a non-zero coefficient.
func signedTerm(coef int, suffix string) string {
	if coef < 0 {
		return fmt.Sprintf("- %d%s", -coef, suffix)
	}
	return fmt.Sprintf("+ %d%s", coef, suffix)
}

// polynomial renders x^2 + bx + c with zero terms omitted.
func polynomial(b, c int) string {
	parts := []string{"x^2"}
	if b != 0 {
		parts = append(parts, signedTerm(b, "x"))
	}
	if c != 0 {
		parts = append(parts, signedTerm(c, ""))
	}
	return strings.Join(parts, " ")
}
