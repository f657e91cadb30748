package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkritika/cortex/internal/llm"
)

const solverSystemPrompt = `You are a precise symbolic math engine. Solve the query exactly.
Return the final answer in the shortest conventional notation (for example "6x", "x = -2, x = 3",
"(x + 1)(x + 4)", "-7 + 22i", "-cos(3x)/3 + constant"), and up to five short solution steps.`

var solutionSchema = &llm.Schema{
	Name:        "oracle-solution",
	Description: "Final answer and worked steps for a math query",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "minLength": 1},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"answer", "steps"},
		"additionalProperties": false,
	},
}

// LLMSolver asks a language model to work the query.
type LLMSolver struct {
	provider llm.Provider
}

func NewLLMSolver(p llm.Provider) *LLMSolver {
	return &LLMSolver{provider: p}
}

func (s *LLMSolver) Name() string { return "llm:" + s.provider.ModelID() }

func (s *LLMSolver) IDPrefix() string { return "llm" }

func (s *LLMSolver) Solve(ctx context.Context, query string) (*Solution, error) {
	ctx = llm.WithPurpose(ctx, "oracle-solve")
	resp, err := s.provider.Generate(ctx, llm.UserPrompt(solverSystemPrompt, query, solutionSchema, 512))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var out struct {
		Answer string   `json:"answer"`
		Steps  []string `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("%w: decode solution: %w", ErrNotUnderstood, err)
	}
	answer := strings.TrimSpace(out.Answer)
	if answer == "" {
		return nil, fmt.Errorf("%w: empty answer for %q", ErrNotUnderstood, query)
	}

	sol := &Solution{Answer: answer}
	if len(out.Steps) > 0 {
		sol.Steps = []Step{{Title: "Solution steps", Text: strings.Join(out.Steps, "\n")}}
	}
	return sol, nil
}
