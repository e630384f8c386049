package driven

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// RoleStore handles role persistence (PostgreSQL)
type RoleStore interface {
	// Create inserts a role record.
	// Fails with ErrAlreadyExists on a title collision.
	Create(ctx context.Context, role *domain.Role) error

	// GetByTitle retrieves a role by title
	GetByTitle(ctx context.Context, title string) (*domain.Role, error)

	// List retrieves all roles, ascending by access level
	List(ctx context.Context) ([]*domain.Role, error)
}
