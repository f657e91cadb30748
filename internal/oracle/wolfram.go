package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultWolframBaseURL is the public Wolfram|Alpha API host.
const DefaultWolframBaseURL = "https://api.wolframalpha.com"

const notUnderstoodMarker = "Wolfram|Alpha did not understand"

// WolframSolver queries the Short Answers API for the answer and the Full
// Results API for step-by-step pods.
type WolframSolver struct {
	appID   string
	baseURL string
	client  *http.Client
}

// WolframOption customizes a WolframSolver.
type WolframOption func(*WolframSolver)

// WithBaseURL points the solver at another host (tests use httptest).
func WithBaseURL(u string) WolframOption {
	return func(s *WolframSolver) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) WolframOption {
	return func(s *WolframSolver) { s.client = c }
}

// NewWolframSolver returns a solver for appID, or ErrNotConfigured when the
// credential is empty or the placeholder.
func NewWolframSolver(appID string, opts ...WolframOption) (*WolframSolver, error) {
	if !Configured(appID) {
		return nil, ErrNotConfigured
	}
	s := &WolframSolver{appID: appID, baseURL: DefaultWolframBaseURL, client: http.DefaultClient}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *WolframSolver) Name() string { return "wolfram" }

func (s *WolframSolver) IDPrefix() string { return "wolfram" }

// Solve fetches the short answer; a failed step-by-step lookup is not an error.
func (s *WolframSolver) Solve(ctx context.Context, query string) (*Solution, error) {
	answer, err := s.shortAnswer(ctx, query)
	if err != nil {
		return nil, err
	}
	steps, _ := s.steps(ctx, query)
	return &Solution{Answer: answer, Steps: steps}, nil
}

func (s *WolframSolver) shortAnswer(ctx context.Context, query string) (string, error) {
	params := url.Values{"appid": {s.appID}, "i": {query}}
	body, status, err := s.get(ctx, "/v1/result", params)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(body))
	switch {
	case status == http.StatusNotImplemented, strings.Contains(text, notUnderstoodMarker):
		return "", fmt.Errorf("%w: %q", ErrNotUnderstood, query)
	case status != http.StatusOK:
		return "", fmt.Errorf("%w: short answer HTTP %d", ErrUnavailable, status)
	case text == "":
		return "", fmt.Errorf("%w: empty answer for %q", ErrNotUnderstood, query)
	}
	return text, nil
}

type fullResult struct {
	QueryResult struct {
		Success bool `json:"success"`
		Pods    []struct {
			Title   string `json:"title"`
			Subpods []struct {
				Plaintext string `json:"plaintext"`
			} `json:"subpods"`
		} `json:"pods"`
	} `json:"queryresult"`
}

// steps returns the pods whose title mentions a step, result or solution.
func (s *WolframSolver) steps(ctx context.Context, query string) ([]Step, error) {
	params := url.Values{
		"appid":    {s.appID},
		"input":    {query},
		"podstate": {"Step-by-step solution"},
		"format":   {"plaintext"},
		"output":   {"json"},
	}
	body, status, err := s.get(ctx, "/v2/query", params)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: full results HTTP %d", ErrUnavailable, status)
	}

	var res fullResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode full results: %w", err)
	}

	var steps []Step
	for _, pod := range res.QueryResult.Pods {
		if !isSolutionPod(pod.Title) {
			continue
		}
		var lines []string
		for _, sp := range pod.Subpods {
			if sp.Plaintext != "" {
				lines = append(lines, sp.Plaintext)
			}
		}
		if len(lines) > 0 {
			steps = append(steps, Step{Title: pod.Title, Text: strings.Join(lines, "\n")})
		}
	}
	return steps, nil
}

func isSolutionPod(title string) bool {
	for _, kw := range []string{"Step", "Result", "Solution"} {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

func (s *WolframSolver) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	return body, resp.StatusCode, nil
}
