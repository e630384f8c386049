package domain

import "time"

// User represents an account holder (the principal of most requests)
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize
	Role         string    `json:"role"`
	LoggedIn     bool      `json:"loggedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccessLevel resolves the user's rank from the role registry.
// An unknown role (should not happen for persisted users) ranks lowest.
func (u *User) AccessLevel() int {
	level, err := AccessLevelOf(u.Role)
	if err != nil {
		return 0
	}
	return level
}

// IsAdmin checks if the user holds the top administrative rank
func (u *User) IsAdmin() bool {
	return u.AccessLevel() == MaxAccessLevel
}
