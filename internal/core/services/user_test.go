package services

import (
	"context"
	"testing"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven/mocks"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

func seedUser(t *testing.T, store *mocks.MockUserStore, id, role string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:       id,
		Username: "user-" + id,
		Email:    id + "@example.com",
		Role:     role,
		LoggedIn: true,
	}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seed Create() error = %v", err)
	}
	return user
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockUserStore()
	svc := NewUserService(store, nil)

	seedUser(t, store, "u1", domain.RoleViewer)
	seedUser(t, store, "u2", domain.RoleViewer)

	t.Run("own profile", func(t *testing.T) {
		user, err := svc.Get(ctx, principal("u1", domain.RoleViewer, 0), "u1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if user.ID != "u1" {
			t.Errorf("Get() id = %q, want u1", user.ID)
		}
	})

	t.Run("other profile denied for staff", func(t *testing.T) {
		if _, err := svc.Get(ctx, principal("u1", domain.RoleStaff, 1), "u2"); err != domain.ErrForbidden {
			t.Errorf("Get() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("other profile allowed for admin", func(t *testing.T) {
		if _, err := svc.Get(ctx, principal("u1", domain.RoleAdmin, 2), "u2"); err != nil {
			t.Errorf("Get() error = %v", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		if _, err := svc.Get(ctx, principal("u1", domain.RoleAdmin, 2), "ghost"); err != domain.ErrNotFound {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("self update of profile fields", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u1", domain.RoleViewer)

		user, err := svc.Update(ctx, principal("u1", domain.RoleViewer, 0), "u1", driving.UpdateUserRequest{
			FirstName: strptr("Ada"),
			Email:     strptr("  Ada@Example.COM "),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if user.FirstName != "Ada" {
			t.Errorf("FirstName = %q, want Ada", user.FirstName)
		}
		if user.Email != "ada@example.com" {
			t.Errorf("Email = %q, want normalized lowercase", user.Email)
		}
	})

	t.Run("role change denied for non-admin even on own profile", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u1", domain.RoleViewer)

		if _, err := svc.Update(ctx, principal("u1", domain.RoleViewer, 0), "u1", driving.UpdateUserRequest{
			Role: strptr(domain.RoleAdmin),
		}); err != domain.ErrForbidden {
			t.Errorf("Update() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin assigns a role", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u1", domain.RoleAdmin)
		seedUser(t, store, "u2", domain.RoleViewer)

		user, err := svc.Update(ctx, principal("u1", domain.RoleAdmin, 2), "u2", driving.UpdateUserRequest{
			Role: strptr(domain.RoleStaff),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if user.Role != domain.RoleStaff {
			t.Errorf("Role = %q, want staff", user.Role)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u1", domain.RoleAdmin)

		if _, err := svc.Update(ctx, principal("u1", domain.RoleAdmin, 2), "u1", driving.UpdateUserRequest{
			Role: strptr("root"),
		}); err != domain.ErrUnknownRole {
			t.Errorf("Update() error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("other profile denied for staff", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u2", domain.RoleViewer)

		if _, err := svc.Update(ctx, principal("u1", domain.RoleStaff, 1), "u2", driving.UpdateUserRequest{
			FirstName: strptr("X"),
		}); err != domain.ErrForbidden {
			t.Errorf("Update() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("duplicate username surfaces as conflict", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u1", domain.RoleViewer)
		seedUser(t, store, "u2", domain.RoleViewer)

		if _, err := svc.Update(ctx, principal("u1", domain.RoleViewer, 0), "u1", driving.UpdateUserRequest{
			Username: strptr("user-u2"),
		}); err != domain.ErrAlreadyExists {
			t.Errorf("Update() error = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("self delete clears the session cache", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		cache := mocks.NewMockSessionCache()
		svc := NewUserService(store, cache)
		seedUser(t, store, "u1", domain.RoleViewer)
		if err := cache.SetLoggedIn(ctx, "u1", true); err != nil {
			t.Fatalf("SetLoggedIn() error = %v", err)
		}

		if err := svc.Delete(ctx, principal("u1", domain.RoleViewer, 0), "u1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if store.Count() != 0 {
			t.Errorf("store has %d users after delete", store.Count())
		}
		if _, err := cache.GetLoggedIn(ctx, "u1"); err != domain.ErrNotFound {
			t.Errorf("GetLoggedIn() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("admin deletes another account", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u2", domain.RoleViewer)

		if err := svc.Delete(ctx, principal("u1", domain.RoleAdmin, 2), "u2"); err != nil {
			t.Errorf("Delete() error = %v", err)
		}
	})

	t.Run("staff cannot delete another account", func(t *testing.T) {
		store := mocks.NewMockUserStore()
		svc := NewUserService(store, nil)
		seedUser(t, store, "u2", domain.RoleViewer)

		if err := svc.Delete(ctx, principal("u1", domain.RoleStaff, 1), "u2"); err != domain.ErrForbidden {
			t.Errorf("Delete() error = %v, want ErrForbidden", err)
		}
	})
}

func TestUserList(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockUserStore()
	svc := NewUserService(store, nil)

	seedUser(t, store, "u1", domain.RoleAdmin)
	seedUser(t, store, "u2", domain.RoleViewer)

	t.Run("admin lists users", func(t *testing.T) {
		users, err := svc.List(ctx, principal("u1", domain.RoleAdmin, 2))
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(users) != 2 {
			t.Errorf("List() returned %d users, want 2", len(users))
		}
	})

	t.Run("staff denied", func(t *testing.T) {
		if _, err := svc.List(ctx, principal("u2", domain.RoleStaff, 1)); err != domain.ErrForbidden {
			t.Errorf("List() error = %v, want ErrForbidden", err)
		}
	})
}
