package driven

import "github.com/docuvault-labs/docuvault-core/internal/core/domain"

// AuthAdapter handles authentication cryptographic operations.
// This does NOT touch storage - the persisted logged-in flag lives with
// the user record and is checked separately.
type AuthAdapter interface {
	// Password operations
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool

	// GenerateToken signs the claims with a fixed TTL from issuance.
	// Claims never include password material.
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken verifies signature, structure and expiry
	ParseToken(token string) (*domain.TokenClaims, error)

	// DecodeUnsafe decodes claims WITHOUT verifying the signature.
	// Only for identifying whose session to consult or mutate; never
	// an authorization input.
	DecodeUnsafe(token string) (*domain.TokenClaims, error)
}
