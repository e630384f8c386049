package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	userStore    driven.UserStore
	authAdapter  driven.AuthAdapter
	sessionCache driven.SessionCache // optional, may be nil
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore driven.UserStore,
	authAdapter driven.AuthAdapter,
	sessionCache driven.SessionCache,
) driving.AuthService {
	return &authService{
		userStore:    userStore,
		authAdapter:  authAdapter,
		sessionCache: sessionCache,
		tokenTTL:     24 * time.Hour,
	}
}

// Signup creates a new account, marks it logged in and issues a token
func (s *authService) Signup(ctx context.Context, req driving.SignupRequest) (*domain.LoginResponse, error) {
	if req.Username == "" || req.FirstName == "" || req.LastName == "" ||
		req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = domain.DefaultRole()
	}
	if !domain.IsValidTitle(role) {
		return nil, domain.ErrUnknownRole
	}

	passwordHash, err := s.authAdapter.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           newID(),
		Username:     strings.TrimSpace(req.Username),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		Role:         role,
		LoggedIn:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness of username/email is the store's job; a duplicate
	// surfaces as ErrAlreadyExists even under concurrent signups.
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	s.cacheLoggedIn(ctx, user.ID, true)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{User: user, Token: token}, nil
}

// Login verifies credentials, marks the user logged in and issues a token
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	// The flag flips only after the credential match; a failed attempt
	// never transitions the session state.
	if !s.authAdapter.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, domain.ErrWrongPassword
	}

	user, err = s.userStore.SetLoggedIn(ctx, user.ID, true)
	if err != nil {
		return nil, err
	}

	s.cacheLoggedIn(ctx, user.ID, true)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{User: user, Token: token}, nil
}

// Logout flips the persisted logged-in flag for the token's subject
func (s *authService) Logout(ctx context.Context, token string) error {
	// Decode without verification: the token only identifies whose
	// session to end, it authorizes nothing.
	claims, err := s.authAdapter.DecodeUnsafe(token)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	if _, err := s.userStore.SetLoggedIn(ctx, claims.UserID, false); err != nil {
		return err
	}

	s.cacheLoggedIn(ctx, claims.UserID, false)
	return nil
}

// Session reports the persisted logged-in state for a token holder
func (s *authService) Session(ctx context.Context, token string) (*domain.SessionStatus, error) {
	loggedOut := &domain.SessionStatus{LoggedIn: "false"}
	if token == "" {
		return loggedOut, nil
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return loggedOut, nil
	}

	user, err := s.userStore.Get(ctx, claims.UserID)
	if err != nil {
		return loggedOut, nil
	}

	return &domain.SessionStatus{
		User:     user,
		LoggedIn: strconv.FormatBool(user.LoggedIn),
	}, nil
}

// ValidateToken authenticates a request token and returns the principal
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	// Logged-out sessions are rejected before cryptographic
	// verification; the unverified decode only names the subject.
	claims, err := s.authAdapter.DecodeUnsafe(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	loggedIn, err := s.lookupLoggedIn(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if !loggedIn {
		return nil, domain.ErrSessionInactive
	}

	verified, err := s.authAdapter.ParseToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	return verified.Principal(), nil
}

// issueToken signs claims for a user with the fixed TTL. The claims are
// built from scratch so no password material can leak into the token.
func (s *authService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &domain.TokenClaims{
		UserID:      user.ID,
		Role:        user.Role,
		AccessLevel: user.AccessLevel(),
		LoggedIn:    user.LoggedIn,
		IssuedAt:    now.Unix(),
		ExpiresAt:   now.Add(s.tokenTTL).Unix(),
	}
	return s.authAdapter.GenerateToken(claims)
}

// lookupLoggedIn reads the session flag through the cache, falling back
// to the user store and backfilling on a miss
func (s *authService) lookupLoggedIn(ctx context.Context, userID string) (bool, error) {
	if s.sessionCache != nil {
		if flag, err := s.sessionCache.GetLoggedIn(ctx, userID); err == nil {
			return flag, nil
		}
	}

	user, err := s.userStore.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	s.cacheLoggedIn(ctx, userID, user.LoggedIn)
	return user.LoggedIn, nil
}

// cacheLoggedIn records the flag best-effort; the store stays authoritative
func (s *authService) cacheLoggedIn(ctx context.Context, userID string, loggedIn bool) {
	if s.sessionCache != nil {
		_ = s.sessionCache.SetLoggedIn(ctx, userID, loggedIn)
	}
}
