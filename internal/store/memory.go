package store

import (
	"context"
	"sync"
)

// Memory is a process-local Store. Data is lost on exit.
type Memory struct {
	mu       sync.RWMutex
	results  []TestResult
	progress map[string]Progress
}

func NewMemory() *Memory {
	return &Memory{progress: make(map[string]Progress)}
}

func (m *Memory) AppendResult(_ context.Context, r TestResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, cloneResult(r))
	return nil
}

func (m *Memory) ResultsForUser(_ context.Context, userID string) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []TestResult{}
	for _, r := range m.results {
		if r.UserID == userID {
			out = append(out, cloneResult(r))
		}
	}
	return out, nil
}

func (m *Memory) AllResults(_ context.Context) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TestResult, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, cloneResult(r))
	}
	return out, nil
}

func (m *Memory) SaveProgress(_ context.Context, p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress[p.UserID] = p
	return nil
}

func (m *Memory) GetProgress(_ context.Context, userID string) (*Progress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.progress[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) Close() error { return nil }
