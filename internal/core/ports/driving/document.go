package driving

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// CreateDocumentRequest represents a request to create a document
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Role    string `json:"role,omitempty"`
}

// UpdateDocumentRequest represents a partial document update
type UpdateDocumentRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Role    *string `json:"role,omitempty"`
}

// DocumentService manages documents under the access policy
type DocumentService interface {
	// Create creates a document owned by the principal
	Create(ctx context.Context, principal *domain.Principal, req CreateDocumentRequest) (*domain.Document, error)

	// Get retrieves a document, subject to the read policy
	Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Document, error)

	// Update updates a document, subject to the write policy
	Update(ctx context.Context, principal *domain.Principal, id string, req UpdateDocumentRequest) (*domain.Document, error)

	// Delete deletes a document; owner or top administrative rank only
	Delete(ctx context.Context, principal *domain.Principal, id string) error

	// All lists documents visible to the principal, newest first
	All(ctx context.Context, principal *domain.Principal, limit int) ([]*domain.Document, error)

	// AllByRole lists visible documents requiring the given role
	AllByRole(ctx context.Context, principal *domain.Principal, role string, limit int) ([]*domain.Document, error)

	// AllByDate lists visible documents created on the given day (YYYY-MM-DD)
	AllByDate(ctx context.Context, principal *domain.Principal, date string, limit int) ([]*domain.Document, error)

	// AllByOwner lists documents created by a user
	AllByOwner(ctx context.Context, principal *domain.Principal, ownerID string) ([]*domain.Document, error)
}
