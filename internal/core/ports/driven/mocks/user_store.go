package mocks

import (
	"context"
	"sync"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Ensure MockUserStore implements UserStore
var _ driven.UserStore = (*MockUserStore)(nil)

// MockUserStore is a mock implementation of UserStore for testing
type MockUserStore struct {
	mu         sync.RWMutex
	users      map[string]*domain.User
	byUsername map[string]*domain.User
	byEmail    map[string]*domain.User
}

// NewMockUserStore creates a new MockUserStore
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:      make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
		byEmail:    make(map[string]*domain.User),
	}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUsername[user.Username]; ok {
		return domain.ErrAlreadyExists
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.ErrAlreadyExists
	}
	m.users[user.ID] = user
	m.byUsername[user.Username] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *MockUserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.byUsername, old.Username)
	delete(m.byEmail, old.Email)
	m.users[user.ID] = user
	m.byUsername[user.Username] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.User
	for _, user := range m.users {
		result = append(result, user)
	}
	return result, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.byUsername, user.Username)
	delete(m.byEmail, user.Email)
	delete(m.users, id)
	return nil
}

func (m *MockUserStore) SetLoggedIn(ctx context.Context, id string, loggedIn bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.LoggedIn = loggedIn
	return user, nil
}

// Helper methods for testing

func (m *MockUserStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*domain.User)
	m.byUsername = make(map[string]*domain.User)
	m.byEmail = make(map[string]*domain.User)
}

func (m *MockUserStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}
