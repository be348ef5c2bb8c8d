package catalog

import (
	"context"
	"sync"
	"time"

	"fjapps-store/core/domain"
)

// mockCatalogClient is a mock implementation of the CatalogClient interface
type mockCatalogClient struct {
	mu         sync.Mutex
	calls      []domain.CatalogQuery
	lookupFunc func(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogEntry, error)
}

func (m *mockCatalogClient) Lookup(ctx context.Context, q domain.CatalogQuery) ([]domain.CatalogEntry, error) {
	m.mu.Lock()
	m.calls = append(m.calls, q)
	m.mu.Unlock()

	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockCatalogClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockLogger records messages per level
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMockLogger() *mockLogger {
	return &mockLogger{messages: make(map[string][]string)}
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[level] = append(m.messages[level], msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{}) { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

// mockMetrics counts observations
type mockMetrics struct {
	mu       sync.Mutex
	outcomes []string
	excluded int
}

func (m *mockMetrics) ObserveLookup(outcome string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockMetrics) AddExcluded(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.excluded += n
}

func entries(ids ...int64) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.CatalogEntry{AppID: id, DisplayName: "app"})
	}
	return out
}
