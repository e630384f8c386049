package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// defaultListLimit caps listings when the caller does not set one
const defaultListLimit = 10

// dateFormat is the only accepted date-filter input shape
var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// documentService implements the DocumentService interface
type documentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(docStore driven.DocumentStore) driving.DocumentService {
	return &documentService{docStore: docStore}
}

// Create creates a document owned by the principal
func (s *documentService) Create(ctx context.Context, principal *domain.Principal, req driving.CreateDocumentRequest) (*domain.Document, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = domain.DefaultRole()
	}
	if !domain.IsValidTitle(role) {
		return nil, domain.ErrUnknownRole
	}

	now := time.Now()
	doc := &domain.Document{
		ID:           newID(),
		Title:        title,
		Content:      req.Content,
		OwnerID:      principal.UserID,
		Role:         role,
		DateCreated:  now,
		LastModified: now,
	}

	// Title uniqueness rides on the store's constraint; two concurrent
	// creates with the same title cannot both succeed.
	if err := s.docStore.Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Get retrieves a document, subject to the read policy
func (s *documentService) Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Document, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckDocumentAccess(principal, doc, domain.OpRead); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update updates a document, subject to the write policy
func (s *documentService) Update(ctx context.Context, principal *domain.Principal, id string, req driving.UpdateDocumentRequest) (*domain.Document, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckDocumentAccess(principal, doc, domain.OpWrite); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		doc.Title = title
	}
	if req.Content != nil {
		doc.Content = *req.Content
	}
	if req.Role != nil {
		if !domain.IsValidTitle(*req.Role) {
			return nil, domain.ErrUnknownRole
		}
		doc.Role = *req.Role
	}
	doc.LastModified = time.Now()

	if err := s.docStore.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete deletes a document; owner or top administrative rank only
func (s *documentService) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := CheckDocumentAccess(principal, doc, domain.OpDelete); err != nil {
		return err
	}
	return s.docStore.Delete(ctx, id)
}

// All lists documents visible to the principal, newest first
func (s *documentService) All(ctx context.Context, principal *domain.Principal, limit int) ([]*domain.Document, error) {
	docs, err := s.docStore.List(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return FilterDocuments(principal, docs), nil
}

// AllByRole lists visible documents requiring the given role
func (s *documentService) AllByRole(ctx context.Context, principal *domain.Principal, role string, limit int) ([]*domain.Document, error) {
	if !domain.IsValidTitle(role) {
		return nil, domain.ErrUnknownRole
	}
	docs, err := s.docStore.ListByRole(ctx, role, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return FilterDocuments(principal, docs), nil
}

// AllByDate lists visible documents created on the given day (YYYY-MM-DD)
func (s *documentService) AllByDate(ctx context.Context, principal *domain.Principal, date string, limit int) ([]*domain.Document, error) {
	if !dateFormat.MatchString(date) {
		return nil, domain.ErrInvalidInput
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	docs, err := s.docStore.ListByDateRange(ctx, day, day.AddDate(0, 0, 1), normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return FilterDocuments(principal, docs), nil
}

// AllByOwner lists documents created by a user
func (s *documentService) AllByOwner(ctx context.Context, principal *domain.Principal, ownerID string) ([]*domain.Document, error) {
	docs, err := s.docStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return FilterDocuments(principal, docs), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
