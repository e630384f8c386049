package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, title, content, owner_id, role, date_created, last_modified`

// Create inserts a new document. Title uniqueness is enforced by the
// database, so concurrent duplicates surface as ErrAlreadyExists.
func (s *DocumentStore) Create(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (id, title, content, owner_id, role, date_created, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.Title,
		doc.Content,
		doc.OwnerID,
		NullString(doc.Role),
		doc.DateCreated,
		doc.LastModified,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Get retrieves a document by ID
func (s *DocumentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	doc, err := s.scan(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Update updates a document record
func (s *DocumentStore) Update(ctx context.Context, doc *domain.Document) error {
	query := `
		UPDATE documents
		SET title = $2, content = $3, role = $4, last_modified = $5
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.Title,
		doc.Content,
		NullString(doc.Role),
		doc.LastModified,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete deletes a document
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// List retrieves documents, newest first
func (s *DocumentStore) List(ctx context.Context, limit int) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY date_created DESC LIMIT $1`
	return s.query(ctx, query, limit)
}

// ListByRole retrieves documents requiring the given role, newest first
func (s *DocumentStore) ListByRole(ctx context.Context, role string, limit int) ([]*domain.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE role = $1
		ORDER BY date_created DESC
		LIMIT $2
	`
	return s.query(ctx, query, role, limit)
}

// ListByDateRange retrieves documents created within [from, to), newest first
func (s *DocumentStore) ListByDateRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE date_created >= $1 AND date_created < $2
		ORDER BY date_created DESC
		LIMIT $3
	`
	return s.query(ctx, query, from, to, limit)
}

// ListByOwner retrieves all documents owned by a user, newest first
func (s *DocumentStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE owner_id = $1
		ORDER BY date_created DESC
	`
	return s.query(ctx, query, ownerID)
}

func (s *DocumentStore) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		doc, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *DocumentStore) scan(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var role sql.NullString

	err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.OwnerID,
		&role,
		&doc.DateCreated,
		&doc.LastModified,
	)
	if err != nil {
		return nil, err
	}

	doc.Role = StringValue(role)
	return &doc, nil
}
