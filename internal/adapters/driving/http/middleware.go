package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
	"github.com/docuvault-labs/docuvault-core/internal/metrics"
)

// Context keys
type contextKey string

const principalContextKey contextKey = "principal"

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	authService driving.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService driving.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates the request token and attaches the principal.
// Clients without a token get 403; clients whose session is logged out or
// whose token fails verification get 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)

		principal, err := m.authService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case domain.ErrTokenMissing:
				writeError(w, http.StatusForbidden, "No token provided.")
			case domain.ErrSessionInactive:
				writeError(w, http.StatusUnauthorized, "Unauthorized Access. Please login first")
			default:
				writeError(w, http.StatusUnauthorized, "Failed to authenticate token.")
			}
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin ensures the authenticated principal holds the top rank
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := GetPrincipal(r.Context())
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized Access. Please login first")
			return
		}

		if !principal.IsAdmin() {
			writeError(w, http.StatusForbidden, "Unauthorized Access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetPrincipal retrieves the authenticated principal from request context
func GetPrincipal(ctx context.Context) *domain.Principal {
	if ctx == nil {
		return nil
	}
	principal, ok := ctx.Value(principalContextKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}

// ExtractToken finds the request token. The X-Access-Token header, the
// Authorization Bearer header and a "token" field in a JSON body are all
// accepted; the body is restored so handlers can still read it.
func ExtractToken(r *http.Request) string {
	if token := r.Header.Get("X-Access-Token"); token != "" {
		return token
	}

	if auth := r.Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	return extractBodyToken(r)
}

func extractBodyToken(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Token
}

// Logging middleware

// LoggingMiddleware logs HTTP requests and records request metrics
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a new LoggingMiddleware
func NewLoggingMiddleware(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Handler wraps an http.Handler with request logging and metrics
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(r.Method, route, statusClass(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(duration.Seconds())

		m.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Msg("request")
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Recovery middleware

// RecoveryMiddleware recovers from panics
type RecoveryMiddleware struct {
	logger zerolog.Logger
}

// NewRecoveryMiddleware creates a new RecoveryMiddleware
func NewRecoveryMiddleware(logger zerolog.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{logger: logger}
}

// Handler wraps an http.Handler with panic recovery
func (m *RecoveryMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				m.logger.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("panic recovered")
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
