package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string
	logger     zerolog.Logger

	// Services
	authService driving.AuthService
	userService driving.UserService
	docService  driving.DocumentService
	roleService driving.RoleService

	// Infrastructure
	db          Pinger // PostgreSQL health check
	redisClient Pinger // Redis health check (optional)
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	Version      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		Version:      "dev",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	logger zerolog.Logger,
	authService driving.AuthService,
	userService driving.UserService,
	docService driving.DocumentService,
	roleService driving.RoleService,
	db Pinger,
	redisClient Pinger, // can be nil
) *Server {
	s := &Server{
		router:      http.NewServeMux(),
		version:     cfg.Version,
		logger:      logger,
		authService: authService,
		userService: userService,
		docService:  docService,
		roleService: roleService,
		db:          db,
		redisClient: redisClient,
	}

	logging := NewLoggingMiddleware(logger)
	recovery := NewRecoveryMiddleware(logger)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      recovery.Handler(logging.Handler(s.router)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health and observability endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)
	s.router.Handle("GET /metrics", promhttp.Handler())

	// Auth endpoints (public)
	s.router.HandleFunc("POST /api/users", s.handleSignup)
	s.router.HandleFunc("POST /api/users/login", s.handleLogin)
	s.router.HandleFunc("POST /api/users/logout", s.handleLogout)
	s.router.HandleFunc("GET /api/users/session", s.handleSession)

	// User endpoints (authenticated; the listing is admin-rank only)
	s.router.Handle("GET /api/users",
		authMiddleware.Authenticate(
			authMiddleware.RequireAdmin(http.HandlerFunc(s.handleListUsers))))
	s.router.Handle("GET /api/users/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetUser)))
	s.router.Handle("PUT /api/users/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateUser)))
	s.router.Handle("DELETE /api/users/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteUser)))
	s.router.Handle("GET /api/users/{id}/documents",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUserDocuments)))

	// Document endpoints (authenticated)
	s.router.Handle("POST /api/documents",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateDocument)))
	s.router.Handle("GET /api/documents",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListDocuments)))
	s.router.Handle("GET /api/documents/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetDocument)))
	s.router.Handle("PUT /api/documents/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateDocument)))
	s.router.Handle("DELETE /api/documents/{id}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDeleteDocument)))
	s.router.Handle("GET /api/documents/created/{date}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDocumentsByDate)))
	s.router.Handle("GET /api/documents/roles/{role}",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleDocumentsByRole)))

	// Role endpoints (authenticated)
	s.router.Handle("POST /api/roles",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateRole)))
	s.router.Handle("GET /api/roles",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListRoles)))
}

// Start starts the HTTP server; it blocks until the listener fails or closes
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routing tree, primarily for tests
func (s *Server) Handler() http.Handler {
	return s.router
}
