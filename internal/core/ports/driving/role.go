package driving

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// RoleService manages the persisted role records. Creation is restricted
// to the closed enumeration; ranks are assigned from the registry.
type RoleService interface {
	// Create creates a role record for a title from the enumeration
	Create(ctx context.Context, title string) (*domain.Role, error)

	// All retrieves all role records
	All(ctx context.Context) ([]*domain.Role, error)

	// Seed ensures every role of the enumeration exists
	Seed(ctx context.Context) error
}
