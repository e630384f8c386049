package driven

import "context"

// SessionCache caches the persisted logged-in flag for the per-request
// middleware lookup (Redis). The user store remains the source of truth;
// entries are overwritten on every login/logout.
type SessionCache interface {
	// SetLoggedIn records the flag for a user
	SetLoggedIn(ctx context.Context, userID string, loggedIn bool) error

	// GetLoggedIn returns the cached flag.
	// Fails with ErrNotFound on a cache miss.
	GetLoggedIn(ctx context.Context, userID string) (bool, error)

	// Invalidate drops the cached flag for a user
	Invalidate(ctx context.Context, userID string) error
}
