package mocks

import (
	"context"
	"sync"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Ensure MockSessionCache implements SessionCache
var _ driven.SessionCache = (*MockSessionCache)(nil)

// MockSessionCache is an in-memory SessionCache for testing
type MockSessionCache struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewMockSessionCache creates a new MockSessionCache
func NewMockSessionCache() *MockSessionCache {
	return &MockSessionCache{
		flags: make(map[string]bool),
	}
}

func (m *MockSessionCache) SetLoggedIn(ctx context.Context, userID string, loggedIn bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[userID] = loggedIn
	return nil
}

func (m *MockSessionCache) GetLoggedIn(ctx context.Context, userID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	flag, ok := m.flags[userID]
	if !ok {
		return false, domain.ErrNotFound
	}
	return flag, nil
}

func (m *MockSessionCache) Invalidate(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flags, userID)
	return nil
}
