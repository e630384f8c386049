package domain

// Principal is the authenticated identity attached to a request after
// token verification. It never carries password material.
type Principal struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessLevel int    `json:"access_level"`
	LoggedIn    bool   `json:"logged_in"`
}

// IsAdmin checks if the principal holds the top administrative rank
func (p *Principal) IsAdmin() bool {
	return p.AccessLevel == MaxAccessLevel
}

// Owns reports whether the principal owns the given document
func (p *Principal) Owns(doc *Document) bool {
	return p.UserID == doc.OwnerID
}

// TokenClaims represents the session token payload
type TokenClaims struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessLevel int    `json:"access_level"`
	LoggedIn    bool   `json:"logged_in"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// Principal converts verified claims into a request principal
func (c *TokenClaims) Principal() *Principal {
	return &Principal{
		UserID:      c.UserID,
		Role:        c.Role,
		AccessLevel: c.AccessLevel,
		LoggedIn:    c.LoggedIn,
	}
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful signup or login
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// SessionStatus reports the persisted logged-in state for a token holder.
// LoggedIn is a string for compatibility with existing API consumers.
type SessionStatus struct {
	User     *User  `json:"user,omitempty"`
	LoggedIn string `json:"loggedIn"`
}
