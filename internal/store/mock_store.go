// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without touching the filesystem or SQLite

package store

import (
	"context"
	"sort"
	"sync"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu      sync.RWMutex
	entries map[string]string // keyed by exact article name

	// Err, when set, is returned by every operation to simulate storage failures.
	Err error
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		entries: make(map[string]string),
	}
}

// ListEntries returns all stored names, sorted.
func (m *MockStore) ListEntries(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}

	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetEntry retrieves a body by exact name.
func (m *MockStore) GetEntry(ctx context.Context, name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return "", false, m.Err
	}

	body, ok := m.entries[name]
	return body, ok, nil
}

// SaveEntry stores the normalized body under name.
func (m *MockStore) SaveEntry(ctx context.Context, name, body string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.entries[name] = NormalizeNewlines(body)
	return nil
}

// Close is a no-op.
func (m *MockStore) Close() error {
	return nil
}

// Len returns the number of stored entries.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
