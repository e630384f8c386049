package postgres

import (
	"context"
	"database/sql"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.UserStore = (*UserStore)(nil)

// UserStore implements driven.UserStore using PostgreSQL
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, username, first_name, last_name, email, password_hash, role, logged_in, created_at, updated_at`

// Create inserts a new user. Username and email uniqueness is enforced
// by the database, so concurrent duplicates surface as ErrAlreadyExists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, first_name, last_name, email, password_hash, role, logged_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.LoggedIn,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Get retrieves a user by ID
func (s *UserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, username))
}

// Update updates a user record
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5,
		    password_hash = $6, role = $7, logged_in = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.LoggedIn,
		user.UpdatedAt,
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

// List retrieves all users, newest first
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Delete deletes a user
func (s *UserStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`
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

// SetLoggedIn flips the persisted logged-in flag and returns the updated user
func (s *UserStore) SetLoggedIn(ctx context.Context, id string, loggedIn bool) (*domain.User, error) {
	query := `
		UPDATE users SET logged_in = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return s.scanOne(s.db.QueryRowContext(ctx, query, id, loggedIn))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *UserStore) scan(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.LoggedIn,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) scanOne(row *sql.Row) (*domain.User, error) {
	user, err := s.scan(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
