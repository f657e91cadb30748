package oracle

import (
	"strconv"
	"strings"

	"github.com/pkritika/cortex/internal/problemgen"
	"github.com/pkritika/cortex/internal/random"
)

type problemKind int

const (
	kindDerivative problemKind = iota
	kindIntegral
	kindSolve
	kindFactor
	kindSimplify
)

// template pairs the query sent to the solver with the text shown to the
// student. Placeholders: {a} 2..5, {b} -5..5, {c} -10..10, {d} 1..5, {n} 2..6.
type template struct {
	kind     problemKind
	category string
	query    string
	display  string
}

var templates = []template{
	{kindDerivative, problemgen.CategoryCalculus, "derivative of x^{n}", "Find the derivative of f(x) = x^{n}"},
	{kindDerivative, problemgen.CategoryCalculus, "derivative of sin({a}x)", "Find the derivative of f(x) = sin({a}x)"},
	{kindDerivative, problemgen.CategoryCalculus, "derivative of cos({a}x)", "Find the derivative of f(x) = cos({a}x)"},
	{kindDerivative, problemgen.CategoryCalculus, "derivative of e^({a}x)", "Find the derivative of f(x) = e^({a}x)"},
	{kindDerivative, problemgen.CategoryCalculus, "derivative of ln({a}x)", "Find the derivative of f(x) = ln({a}x)"},
	{kindIntegral, problemgen.CategoryCalculus, "integral of x^{n}", "Evaluate the integral: ∫ x^{n} dx"},
	{kindIntegral, problemgen.CategoryCalculus, "integral of sin({a}x)", "Evaluate the integral: ∫ sin({a}x) dx"},
	{kindIntegral, problemgen.CategoryCalculus, "integral of cos({a}x)", "Evaluate the integral: ∫ cos({a}x) dx"},
	{kindSolve, problemgen.CategoryAlgebra, "solve x^2 + {b}x + {c} = 0", "Solve the equation: x² + {b}x + {c} = 0"},
	{kindFactor, problemgen.CategoryAlgebra, "factor x^2 + {b}x + {c}", "Factor the expression: x² + {b}x + {c}"},
	{kindSimplify, problemgen.CategoryAlgebra, "simplify ({a} + {b}i) * ({c} + {d}i)", "Simplify: ({a} + {b}i) × ({c} + {d}i)"},
}

// problem is a template with its placeholders filled in.
type problem struct {
	template
	Query string
	Text  string
}

func (t template) fill(src random.Source) problem {
	a := random.Int(src, 2, 5)
	b := random.Int(src, -5, 5)
	c := random.Int(src, -10, 10)
	d := random.Int(src, 1, 5)
	n := random.Int(src, 2, 6)

	itoa := strconv.Itoa
	query := strings.NewReplacer(
		"{a}", itoa(a), "{b}", itoa(b), "{c}", itoa(c), "{d}", itoa(d), "{n}", itoa(n),
	).Replace(t.query)
	text := strings.NewReplacer(
		"{a}", itoa(a), "{b}", parenNegative(b), "{c}", parenNegative(c), "{d}", itoa(d), "{n}", itoa(n),
	).Replace(t.display)

	return problem{template: t, Query: query, Text: text}
}

func parenNegative(v int) string {
	if v < 0 {
		return "(" + strconv.Itoa(v) + ")"
	}
	return strconv.Itoa(v)
}

// hint is appended to the explanation when the solver returned no steps.
func (t template) hint() string {
	switch t.kind {
	case kindDerivative:
		return "**How to solve:**\n" +
			"• Use the power rule: d/dx[x^n] = n·x^(n-1)\n" +
			"• Use the chain rule for composite functions\n" +
			"• For trig functions: d/dx[sin(x)] = cos(x), d/dx[cos(x)] = -sin(x)\n" +
			"• For exponentials: d/dx[e^x] = e^x"
	case kindIntegral:
		return "**How to solve:**\n" +
			"• Use the power rule: ∫x^n dx = x^(n+1)/(n+1) + C\n" +
			"• For trig functions: ∫sin(x)dx = -cos(x)+C, ∫cos(x)dx = sin(x)+C\n" +
			"• Don't forget the constant of integration (+C)"
	case kindSolve:
		return "**How to solve:**\n" +
			"• For quadratics ax²+bx+c=0, use factoring or the quadratic formula\n" +
			"• x = (-b ± √(b²-4ac)) / 2a"
	case kindFactor:
		return "**How to solve:**\n" +
			"• Find two numbers that multiply to give c and add to give b\n" +
			"• Factor as (x + p)(x + q) where p·q = c and p+q = b"
	case kindSimplify:
		return "**How to solve:**\n" +
			"• Use FOIL: (a+bi)(c+di) = ac + adi + bci + bdi²\n" +
			"• Remember that i² = -1\n" +
			"• Combine real and imaginary parts"
	}
	return ""
}

// explanation renders the answer followed by solver steps or a hint.
func explanation(p problem, sol *Solution) string {
	var b strings.Builder
	b.WriteString("**Answer:** ")
	b.WriteString(sol.Answer)

	if len(sol.Steps) > 0 {
		for _, s := range sol.Steps {
			b.WriteString("\n\n**")
			b.WriteString(s.Title)
			b.WriteString(":**\n")
			b.WriteString(s.Text)
		}
		return b.String()
	}
	if h := p.hint(); h != "" {
		b.WriteString("\n\n")
		b.WriteString(h)
	}
	return b.String()
}
