package driven

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// UserStore handles user persistence (PostgreSQL)
type UserStore interface {
	// Create inserts a new user.
	// Fails with ErrAlreadyExists on a username or email collision;
	// uniqueness is enforced by the store, not a prior existence check.
	Create(ctx context.Context, user *domain.User) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update persists profile changes
	Update(ctx context.Context, user *domain.User) error

	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)

	// Delete deletes a user
	Delete(ctx context.Context, id string) error

	// SetLoggedIn atomically sets the persisted session flag and returns
	// the updated user
	SetLoggedIn(ctx context.Context, id string, loggedIn bool) (*domain.User, error)
}
