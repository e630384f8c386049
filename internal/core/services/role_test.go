package services

import (
	"context"
	"testing"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven/mocks"
)

func TestRoleCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid title gets its registry rank", func(t *testing.T) {
		svc := NewRoleService(mocks.NewMockRoleStore())

		role, err := svc.Create(ctx, domain.RoleStaff)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if role.AccessLevel != 1 {
			t.Errorf("AccessLevel = %d, want 1", role.AccessLevel)
		}
		if role.ID == "" {
			t.Error("Create() left ID unset")
		}
	})

	t.Run("empty title", func(t *testing.T) {
		svc := NewRoleService(mocks.NewMockRoleStore())

		if _, err := svc.Create(ctx, "  "); err != domain.ErrInvalidInput {
			t.Errorf("Create() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("title outside the enumeration", func(t *testing.T) {
		svc := NewRoleService(mocks.NewMockRoleStore())

		if _, err := svc.Create(ctx, "superuser"); err != domain.ErrUnknownRole {
			t.Errorf("Create() error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		svc := NewRoleService(mocks.NewMockRoleStore())

		if _, err := svc.Create(ctx, domain.RoleAdmin); err != nil {
			t.Fatalf("first Create() error = %v", err)
		}
		if _, err := svc.Create(ctx, domain.RoleAdmin); err != domain.ErrAlreadyExists {
			t.Errorf("second Create() error = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestRoleSeed(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(mocks.NewMockRoleStore())

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	roles, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("All() returned %d roles, want 3", len(roles))
	}
	for i, want := range []string{domain.RoleViewer, domain.RoleStaff, domain.RoleAdmin} {
		if roles[i].Title != want || roles[i].AccessLevel != i {
			t.Errorf("roles[%d] = %+v, want title %q level %d", i, roles[i], want, i)
		}
	}

	// Seeding again must be a no-op.
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	roles, err = svc.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(roles) != 3 {
		t.Errorf("All() returned %d roles after reseed, want 3", len(roles))
	}
}
