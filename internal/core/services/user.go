package services

import (
	"context"
	"strings"
	"time"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	userStore    driven.UserStore
	sessionCache driven.SessionCache // optional, may be nil
}

// NewUserService creates a new UserService
func NewUserService(userStore driven.UserStore, sessionCache driven.SessionCache) driving.UserService {
	return &userService{
		userStore:    userStore,
		sessionCache: sessionCache,
	}
}

// Get retrieves a user profile
func (s *userService) Get(ctx context.Context, principal *domain.Principal, id string) (*domain.User, error) {
	if !CanAccessProfile(principal, id) {
		return nil, domain.ErrForbidden
	}
	return s.userStore.Get(ctx, id)
}

// Update updates a user profile. Role reassignment is an administrative
// action regardless of whose profile it is.
func (s *userService) Update(ctx context.Context, principal *domain.Principal, id string, req driving.UpdateUserRequest) (*domain.User, error) {
	if !CanAccessProfile(principal, id) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if !principal.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		if !domain.IsValidTitle(*req.Role) {
			return nil, domain.ErrUnknownRole
		}
		user.Role = *req.Role
	}
	user.UpdatedAt = time.Now()

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete deletes a user account
func (s *userService) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	if !CanAccessProfile(principal, id) {
		return domain.ErrForbidden
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}

	if s.sessionCache != nil {
		_ = s.sessionCache.Invalidate(ctx, id)
	}
	return nil
}

// List retrieves all users (admin only)
func (s *userService) List(ctx context.Context, principal *domain.Principal) ([]*domain.User, error) {
	if !CanListUsers(principal) {
		return nil, domain.ErrForbidden
	}
	return s.userStore.List(ctx)
}
