package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Ensure MockDocumentStore implements DocumentStore
var _ driven.DocumentStore = (*MockDocumentStore)(nil)

// MockDocumentStore is a mock implementation of DocumentStore for testing
type MockDocumentStore struct {
	mu      sync.RWMutex
	docs    map[string]*domain.Document
	byTitle map[string]*domain.Document
}

// NewMockDocumentStore creates a new MockDocumentStore
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		docs:    make(map[string]*domain.Document),
		byTitle: make(map[string]*domain.Document),
	}
}

func (m *MockDocumentStore) Create(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byTitle[doc.Title]; ok {
		return domain.ErrAlreadyExists
	}
	m.docs[doc.ID] = doc
	m.byTitle[doc.Title] = doc
	return nil
}

func (m *MockDocumentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *MockDocumentStore) Update(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.docs[doc.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if other, ok := m.byTitle[doc.Title]; ok && other.ID != doc.ID {
		return domain.ErrAlreadyExists
	}
	delete(m.byTitle, old.Title)
	m.docs[doc.ID] = doc
	m.byTitle[doc.Title] = doc
	return nil
}

func (m *MockDocumentStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.byTitle, doc.Title)
	delete(m.docs, id)
	return nil
}

func (m *MockDocumentStore) List(ctx context.Context, limit int) ([]*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(*domain.Document) bool { return true }), nil
}

func (m *MockDocumentStore) ListByRole(ctx context.Context, role string, limit int) ([]*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(d *domain.Document) bool { return d.Role == role }), nil
}

func (m *MockDocumentStore) ListByDateRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(d *domain.Document) bool {
		return !d.DateCreated.Before(from) && d.DateCreated.Before(to)
	}), nil
}

func (m *MockDocumentStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(0, func(d *domain.Document) bool { return d.OwnerID == ownerID }), nil
}

// collect returns matching documents sorted newest first; limit 0 means all.
// Callers must hold the lock.
func (m *MockDocumentStore) collect(limit int, match func(*domain.Document) bool) []*domain.Document {
	var result []*domain.Document
	for _, doc := range m.docs {
		if match(doc) {
			result = append(result, doc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateCreated.After(result[j].DateCreated)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Helper methods for testing

func (m *MockDocumentStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]*domain.Document)
	m.byTitle = make(map[string]*domain.Document)
}

func (m *MockDocumentStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
