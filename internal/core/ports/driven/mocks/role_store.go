package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Ensure MockRoleStore implements RoleStore
var _ driven.RoleStore = (*MockRoleStore)(nil)

// MockRoleStore is a mock implementation of RoleStore for testing
type MockRoleStore struct {
	mu    sync.RWMutex
	roles map[string]*domain.Role // keyed by title
}

// NewMockRoleStore creates a new MockRoleStore
func NewMockRoleStore() *MockRoleStore {
	return &MockRoleStore{
		roles: make(map[string]*domain.Role),
	}
}

func (m *MockRoleStore) Create(ctx context.Context, role *domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[role.Title]; ok {
		return domain.ErrAlreadyExists
	}
	m.roles[role.Title] = role
	return nil
}

func (m *MockRoleStore) GetByTitle(ctx context.Context, title string) (*domain.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[title]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

func (m *MockRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Role
	for _, role := range m.roles {
		result = append(result, role)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AccessLevel < result[j].AccessLevel
	})
	return result, nil
}

// Helper methods for testing

func (m *MockRoleStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles = make(map[string]*domain.Role)
}
