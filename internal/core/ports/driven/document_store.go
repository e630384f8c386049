package driven

import (
	"context"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// DocumentStore handles document persistence (PostgreSQL)
type DocumentStore interface {
	// Create inserts a new document.
	// Fails with ErrAlreadyExists on a title collision.
	Create(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Update persists document changes
	Update(ctx context.Context, doc *domain.Document) error

	// Delete deletes a document
	Delete(ctx context.Context, id string) error

	// List retrieves documents, newest first
	List(ctx context.Context, limit int) ([]*domain.Document, error)

	// ListByRole retrieves documents requiring the given role, newest first
	ListByRole(ctx context.Context, role string, limit int) ([]*domain.Document, error)

	// ListByDateRange retrieves documents created in [from, to), newest first
	ListByDateRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Document, error)

	// ListByOwner retrieves documents created by a user
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error)
}
