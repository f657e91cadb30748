package oracle

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/pkritika/cortex/internal/problemgen"
	"github.com/pkritika/cortex/internal/random"
)

var numberToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

const fillerAttempts = 50

// distractors derives three wrong answers from answer. Numeric variants
// (double, shift, negate, halve the first number) come first; generic
// fillers pad the rest. The result never contains answer or duplicates.
func distractors(src random.Source, answer, category string) []string {
	seen := map[string]bool{answer: true}
	out := make([]string, 0, 3)
	add := func(s string) {
		if len(out) < 3 && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	if loc := numberToken.FindStringIndex(answer); loc != nil {
		if num, err := decimal.NewFromString(answer[loc[0]:loc[1]]); err == nil {
			replace := func(v decimal.Decimal) string {
				return answer[:loc[0]] + v.String() + answer[loc[1]:]
			}
			add(replace(num.Mul(decimal.NewFromInt(2))))
			add(replace(num.Add(decimal.NewFromInt(int64(random.Int(src, 1, 5))))))
			add(replace(num.Neg()))
			add(replace(num.Div(decimal.NewFromInt(2))))
		}
	}

	calculus := category == problemgen.CategoryCalculus
	for i := 0; len(out) < 3 && i < fillerAttempts; i++ {
		add(filler(src, calculus))
	}
	// Filler space is small; make sure we still terminate with three.
	for i := 0; len(out) < 3; i++ {
		add(fmt.Sprintf("x = %d", 11+i))
	}
	return out
}

func filler(src random.Source, calculus bool) string {
	if calculus {
		return fmt.Sprintf("%dx^%d + C", random.Int(src, 1, 10), random.Int(src, 1, 4))
	}
	return fmt.Sprintf("x = %d", random.Int(src, -10, 10))
}
