package postgres

import (
	"context"
	"database/sql"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RoleStore = (*RoleStore)(nil)

// RoleStore implements driven.RoleStore using PostgreSQL
type RoleStore struct {
	db *DB
}

// NewRoleStore creates a new RoleStore
func NewRoleStore(db *DB) *RoleStore {
	return &RoleStore{db: db}
}

// Create inserts a new role. Title uniqueness is enforced by the database.
func (s *RoleStore) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (id, title, access_level) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, role.ID, role.Title, role.AccessLevel)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// GetByTitle retrieves a role by title
func (s *RoleStore) GetByTitle(ctx context.Context, title string) (*domain.Role, error) {
	query := `SELECT id, title, access_level FROM roles WHERE title = $1`

	var role domain.Role
	err := s.db.QueryRowContext(ctx, query, title).Scan(&role.ID, &role.Title, &role.AccessLevel)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// List retrieves all roles ordered by rank
func (s *RoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	query := `SELECT id, title, access_level FROM roles ORDER BY access_level ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Title, &role.AccessLevel); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
