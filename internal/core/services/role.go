package services

import (
	"context"
	"strings"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

// Ensure roleService implements RoleService
var _ driving.RoleService = (*roleService)(nil)

// roleService implements the RoleService interface
type roleService struct {
	roleStore driven.RoleStore
}

// NewRoleService creates a new RoleService
func NewRoleService(roleStore driven.RoleStore) driving.RoleService {
	return &roleService{roleStore: roleStore}
}

// Create creates a role record for a title from the enumeration
func (s *roleService) Create(ctx context.Context, title string) (*domain.Role, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	level, err := domain.AccessLevelOf(title)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{
		ID:          newID(),
		Title:       title,
		AccessLevel: level,
	}

	if err := s.roleStore.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// All retrieves all role records
func (s *roleService) All(ctx context.Context) ([]*domain.Role, error) {
	return s.roleStore.List(ctx)
}

// Seed ensures every role of the enumeration exists. Idempotent;
// safe to run at every startup.
func (s *roleService) Seed(ctx context.Context) error {
	for _, title := range domain.ValidTitles() {
		_, err := s.Create(ctx, title)
		if err != nil && err != domain.ErrAlreadyExists {
			return err
		}
	}
	return nil
}
