package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func solutionSchema() *Schema {
	return &Schema{
		Name: "test-solution",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{"type": "string", "minLength": 1},
				"steps":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"answer"},
		},
	}
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"answer":"2x","steps":["apply power rule"]}`, false},
		{"optional omitted", `{"answer":"2x"}`, false},
		{"missing required", `{"steps":[]}`, true},
		{"empty answer", `{"answer":""}`, true},
		{"wrong type", `{"answer":3}`, true},
		{"not json", `answer: 2x`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(solutionSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse(%s) err = %v", tt.raw, err)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected *ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMockProvider_FIFOAndEmptyQueue(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"answer":"1"}`)},
		MockResponse{Err: &ErrRateLimit{}},
	)
	ctx := context.Background()

	resp, err := m.Generate(ctx, UserPrompt("", "first", nil, 10))
	if err != nil || string(resp.Content) != `{"answer":"1"}` {
		t.Fatalf("unexpected first response: %v %v", resp, err)
	}
	if _, err := m.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected canned error")
	}
	_, err = m.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable on empty queue, got %v", err)
	}
	if m.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", m.CallCount())
	}
	if m.Calls[0].Messages[0].Content != "first" {
		t.Fatalf("request not recorded: %+v", m.Calls[0])
	}
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"answer":"ok"}`)},
	)
	resp, err := WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"ok"}` || m.CallCount() != 2 {
		t.Fatalf("unexpected result %s after %d calls", resp.Content, m.CallCount())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	m := NewMockProvider()
	_, err := WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if m.CallCount() != 3 {
		t.Fatalf("expected 3 attempts, got %d", m.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	inv := &ErrInvalidResponse{Err: errors.New("bad")}
	m := NewMockProvider(MockResponse{Err: inv}, MockResponse{Err: inv}, MockResponse{Err: inv})
	_, err := WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if m.CallCount() != 2 {
		t.Fatalf("expected 2 attempts, got %d", m.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	m := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	_, _ = WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
	if m.CallCount() != 1 {
		t.Fatalf("expected 1 attempt, got %d", m.CallCount())
	}
}

func TestRetry_RejectedRequestNotRetried(t *testing.T) {
	m := NewMockProvider(MockResponse{Err: &ErrRequestRejected{StatusCode: 400, Err: errors.New("bad request")}})
	_, _ = WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
	if m.CallCount() != 1 {
		t.Fatalf("expected 1 attempt, got %d", m.CallCount())
	}
}

func TestStatusError(t *testing.T) {
	base := errors.New("api")
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{429, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{400, func(err error) bool { var e *ErrRequestRejected; return errors.As(err, &e) }},
		{401, func(err error) bool { var e *ErrRequestRejected; return errors.As(err, &e) }},
		{404, func(err error) bool { var e *ErrRequestRejected; return errors.As(err, &e) }},
		{500, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{503, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{0, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		err := statusError(tt.status, base)
		if !tt.check(err) {
			t.Errorf("status %d: unexpected %T", tt.status, err)
		}
		if !errors.Is(err, base) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func TestRetry_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMockProvider(MockResponse{Err: context.Canceled})
	_, err := WithRetry(m, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.CallCount() != 1 {
		t.Fatalf("expected 1 attempt, got %d", m.CallCount())
	}
}

func TestLogging_RecordsPurposeAndErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"answer":"x"}`)},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(m, logger)
	ctx := WithPurpose(context.Background(), "oracle-solve")

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	out := buf.String()
	for _, want := range []string{"purpose=oracle-solve", "model=mock", "llm request failed", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestPurposeFrom_Default(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CORTEX_LLM_PROVIDER", "anthropic")
	t.Setenv("CORTEX_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("CORTEX_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-test" || cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"openai without key", Config{Provider: "openai"}, "CORTEX_OPENAI_API_KEY"},
		{"gemini without key", Config{Provider: "gemini"}, "CORTEX_GEMINI_API_KEY"},
		{"unknown", Config{Provider: "llama"}, "unknown LLM provider"},
		{"mock", Config{Provider: "mock"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock, got %q", p.ModelID())
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("got %q", got)
	}
	if got := resolveModel("claude-custom-1", anthropicModels); got != "claude-custom-1" {
		t.Fatalf("pass-through failed: %q", got)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(solutionSchema().Definition)
	if s.Type != "OBJECT" {
		t.Fatalf("expected OBJECT, got %s", s.Type)
	}
	if s.Properties["steps"].Items == nil || s.Properties["steps"].Items.Type != "STRING" {
		t.Fatalf("steps items not converted: %+v", s.Properties["steps"])
	}
	if len(s.Required) != 1 || s.Required[0] != "answer" {
		t.Fatalf("unexpected required: %v", s.Required)
	}
}
