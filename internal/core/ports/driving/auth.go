package driving

import (
	"context"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// SignupRequest represents a request to create an account
type SignupRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

// AuthService handles signup, login state and token verification
type AuthService interface {
	// Signup creates a new account, marks it logged in and issues a token
	Signup(ctx context.Context, req SignupRequest) (*domain.LoginResponse, error)

	// Login verifies credentials, marks the user logged in and issues a token
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// Logout flips the persisted logged-in flag for the token's subject.
	// The token is decoded without verification: it only identifies whose
	// session to end, it authorizes nothing.
	Logout(ctx context.Context, token string) error

	// Session reports the persisted logged-in state for a token holder
	Session(ctx context.Context, token string) (*domain.SessionStatus, error)

	// ValidateToken authenticates a request token and returns the principal.
	// Order: decode for subject id, reject logged-out sessions
	// (ErrSessionInactive), then verify signature and expiry.
	ValidateToken(ctx context.Context, token string) (*domain.Principal, error)
}
