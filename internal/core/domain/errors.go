package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrWrongPassword indicates the password did not match the stored hash
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenMissing indicates no token was supplied with the request
	ErrTokenMissing = errors.New("token missing")

	// ErrSessionInactive indicates the user has logged out; the token may
	// still be cryptographically valid but must be rejected
	ErrSessionInactive = errors.New("session inactive")

	// ErrUnknownRole indicates a role title outside the closed enumeration
	ErrUnknownRole = errors.New("unknown role")

	// ErrRoleUndeclared indicates a document without a required role;
	// such a document cannot be authorized by rank comparison
	ErrRoleUndeclared = errors.New("role undeclared")
)
