package services

import (
	"context"
	"testing"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven/mocks"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

func strptr(s string) *string { return &s }

func TestDocumentCreate(t *testing.T) {
	ctx := context.Background()
	owner := principal("u1", domain.RoleStaff, 1)

	t.Run("declared role persists", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockDocumentStore())

		doc, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{
			Title:   "Q3 Report",
			Content: "numbers",
			Role:    domain.RoleStaff,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if doc.OwnerID != "u1" {
			t.Errorf("OwnerID = %q, want %q", doc.OwnerID, "u1")
		}
		if doc.Role != domain.RoleStaff {
			t.Errorf("Role = %q, want %q", doc.Role, domain.RoleStaff)
		}
		if doc.ID == "" || doc.DateCreated.IsZero() {
			t.Errorf("Create() left identity fields unset: %+v", doc)
		}
	})

	t.Run("empty role defaults to viewer", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockDocumentStore())

		doc, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Memo"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if doc.Role != domain.RoleViewer {
			t.Errorf("Role = %q, want %q", doc.Role, domain.RoleViewer)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockDocumentStore())

		if _, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "   "}); err != domain.ErrInvalidInput {
			t.Errorf("Create() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockDocumentStore())

		if _, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Memo", Role: "root"}); err != domain.ErrUnknownRole {
			t.Errorf("Create() error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		svc := NewDocumentService(mocks.NewMockDocumentStore())

		if _, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Memo"}); err != nil {
			t.Fatalf("first Create() error = %v", err)
		}
		if _, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Memo"}); err != domain.ErrAlreadyExists {
			t.Errorf("second Create() error = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestDocumentGet(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockDocumentStore()
	svc := NewDocumentService(store)

	owner := principal("u1", domain.RoleViewer, 0)
	created, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Staff Only", Role: domain.RoleStaff})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("owner reads above own rank", func(t *testing.T) {
		if _, err := svc.Get(ctx, owner, created.ID); err != nil {
			t.Errorf("Get() error = %v", err)
		}
	})

	t.Run("viewer denied", func(t *testing.T) {
		if _, err := svc.Get(ctx, principal("u2", domain.RoleViewer, 0), created.ID); err != domain.ErrForbidden {
			t.Errorf("Get() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("staff allowed", func(t *testing.T) {
		if _, err := svc.Get(ctx, principal("u2", domain.RoleStaff, 1), created.ID); err != nil {
			t.Errorf("Get() error = %v", err)
		}
	})

	t.Run("missing document", func(t *testing.T) {
		if _, err := svc.Get(ctx, owner, "nope"); err != domain.ErrNotFound {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDocumentUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(mocks.NewMockDocumentStore())

	owner := principal("u1", domain.RoleViewer, 0)
	created, err := svc.Create(ctx, owner, driving.CreateDocumentRequest{Title: "Draft", Content: "v1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("owner updates fields", func(t *testing.T) {
		doc, err := svc.Update(ctx, owner, created.ID, driving.UpdateDocumentRequest{
			Title:   strptr("Final"),
			Content: strptr("v2"),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if doc.Title != "Final" || doc.Content != "v2" {
			t.Errorf("Update() = %+v", doc)
		}
		if !doc.LastModified.After(doc.DateCreated) && !doc.LastModified.Equal(doc.DateCreated) {
			t.Errorf("LastModified %v before DateCreated %v", doc.LastModified, doc.DateCreated)
		}
	})

	t.Run("lower-ranked non-owner denied", func(t *testing.T) {
		other := principal("u2", domain.RoleViewer, 0)
		// Equal rank suffices for a declared viewer document, so raise the
		// document's role first via the owner.
		if _, err := svc.Update(ctx, owner, created.ID, driving.UpdateDocumentRequest{Role: strptr(domain.RoleStaff)}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if _, err := svc.Update(ctx, other, created.ID, driving.UpdateDocumentRequest{Content: strptr("x")}); err != domain.ErrForbidden {
			t.Errorf("Update() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		if _, err := svc.Update(ctx, owner, created.ID, driving.UpdateDocumentRequest{Role: strptr("root")}); err != domain.ErrUnknownRole {
			t.Errorf("Update() error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		if _, err := svc.Update(ctx, owner, created.ID, driving.UpdateDocumentRequest{Title: strptr(" ")}); err != domain.ErrInvalidInput {
			t.Errorf("Update() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestDocumentDelete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (driving.DocumentService, *domain.Document) {
		t.Helper()
		svc := NewDocumentService(mocks.NewMockDocumentStore())
		doc, err := svc.Create(ctx, principal("u1", domain.RoleViewer, 0), driving.CreateDocumentRequest{Title: "Target"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return svc, doc
	}

	t.Run("owner deletes", func(t *testing.T) {
		svc, doc := setup(t)
		if err := svc.Delete(ctx, principal("u1", domain.RoleViewer, 0), doc.ID); err != nil {
			t.Errorf("Delete() error = %v", err)
		}
	})

	t.Run("staff non-owner denied", func(t *testing.T) {
		svc, doc := setup(t)
		if err := svc.Delete(ctx, principal("u2", domain.RoleStaff, 1), doc.ID); err != domain.ErrForbidden {
			t.Errorf("Delete() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("admin non-owner deletes", func(t *testing.T) {
		svc, doc := setup(t)
		if err := svc.Delete(ctx, principal("u2", domain.RoleAdmin, 2), doc.ID); err != nil {
			t.Errorf("Delete() error = %v", err)
		}
	})

	t.Run("missing document", func(t *testing.T) {
		svc, _ := setup(t)
		if err := svc.Delete(ctx, principal("u1", domain.RoleViewer, 0), "nope"); err != domain.ErrNotFound {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDocumentListings(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockDocumentStore()
	svc := NewDocumentService(store)

	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	seed := []*domain.Document{
		{ID: "d1", Title: "A", OwnerID: "u1", Role: domain.RoleViewer, DateCreated: base},
		{ID: "d2", Title: "B", OwnerID: "u1", Role: domain.RoleStaff, DateCreated: base.Add(time.Hour)},
		{ID: "d3", Title: "C", OwnerID: "u2", Role: domain.RoleAdmin, DateCreated: base.Add(2 * time.Hour)},
		{ID: "d4", Title: "D", OwnerID: "u2", Role: domain.RoleViewer, DateCreated: base.AddDate(0, 0, 1)},
	}
	for _, d := range seed {
		if err := store.Create(ctx, d); err != nil {
			t.Fatalf("seed Create() error = %v", err)
		}
	}

	t.Run("All filters by rank newest first", func(t *testing.T) {
		docs, err := svc.All(ctx, principal("u3", domain.RoleStaff, 1), 0)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		wantIDs := []string{"d4", "d2", "d1"}
		if len(docs) != len(wantIDs) {
			t.Fatalf("All() returned %d documents, want %d", len(docs), len(wantIDs))
		}
		for i, want := range wantIDs {
			if docs[i].ID != want {
				t.Errorf("All()[%d].ID = %q, want %q", i, docs[i].ID, want)
			}
		}
	})

	t.Run("All honors the limit", func(t *testing.T) {
		docs, err := svc.All(ctx, principal("u3", domain.RoleAdmin, 2), 2)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(docs) != 2 {
			t.Errorf("All() returned %d documents, want 2", len(docs))
		}
	})

	t.Run("AllByRole", func(t *testing.T) {
		docs, err := svc.AllByRole(ctx, principal("u3", domain.RoleAdmin, 2), domain.RoleViewer, 0)
		if err != nil {
			t.Fatalf("AllByRole() error = %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("AllByRole() returned %d documents, want 2", len(docs))
		}
		if _, err := svc.AllByRole(ctx, principal("u3", domain.RoleAdmin, 2), "root", 0); err != domain.ErrUnknownRole {
			t.Errorf("AllByRole() error = %v, want ErrUnknownRole", err)
		}
	})

	t.Run("AllByDate", func(t *testing.T) {
		docs, err := svc.AllByDate(ctx, principal("u3", domain.RoleAdmin, 2), "2026-08-10", 0)
		if err != nil {
			t.Fatalf("AllByDate() error = %v", err)
		}
		if len(docs) != 3 {
			t.Errorf("AllByDate() returned %d documents, want 3", len(docs))
		}

		for _, bad := range []string{"10-08-2026", "2026/08/10", "2026-8-10", "not-a-date", "2026-13-40"} {
			if _, err := svc.AllByDate(ctx, principal("u3", domain.RoleAdmin, 2), bad, 0); err != domain.ErrInvalidInput {
				t.Errorf("AllByDate(%q) error = %v, want ErrInvalidInput", bad, err)
			}
		}
	})

	t.Run("AllByOwner still filters by rank", func(t *testing.T) {
		docs, err := svc.AllByOwner(ctx, principal("u3", domain.RoleViewer, 0), "u2")
		if err != nil {
			t.Fatalf("AllByOwner() error = %v", err)
		}
		if len(docs) != 1 || docs[0].ID != "d4" {
			t.Errorf("AllByOwner() = %+v, want only d4", docs)
		}
	})
}
