package driving

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// UpdateUserRequest represents a profile update. Role changes are an
// administrative action and are rejected for non-admin principals.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// UserService manages user profiles, gated by the access policy:
// a principal may act on their own profile, an admin on any.
type UserService interface {
	// Get retrieves a user profile
	Get(ctx context.Context, principal *domain.Principal, id string) (*domain.User, error)

	// Update updates a user profile
	Update(ctx context.Context, principal *domain.Principal, id string, req UpdateUserRequest) (*domain.User, error)

	// Delete deletes a user account
	Delete(ctx context.Context, principal *domain.Principal, id string) error

	// List retrieves all users (admin only)
	List(ctx context.Context, principal *domain.Principal) ([]*domain.User, error)
}
