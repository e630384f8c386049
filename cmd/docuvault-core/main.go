package main

// @title           DocuVault Core API
// @version         1.0
// @description     Document management API. DocuVault Core provides role-gated document storage with per-user sessions.

// @contact.name   DocuVault OSS
// @contact.url    https://github.com/docuvault-labs/docuvault-core/issues

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}". The X-Access-Token header is also accepted.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/docuvault-labs/docuvault-core/internal/adapters/driven/auth"
	"github.com/docuvault-labs/docuvault-core/internal/adapters/driven/postgres"
	redisadapter "github.com/docuvault-labs/docuvault-core/internal/adapters/driven/redis"
	"github.com/docuvault-labs/docuvault-core/internal/adapters/driving/http"
	"github.com/docuvault-labs/docuvault-core/internal/config"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
	"github.com/docuvault-labs/docuvault-core/internal/core/services"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)
	logger.Info().Str("version", version).Msg("docuvault-core starting")

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info().Msg("shutdown signal received")
		cancel()
	}()

	// ===== PostgreSQL =====
	dbConfig := postgres.Config{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}
	db, err := postgres.Connect(ctx, dbConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Schema init is idempotent
	if err := db.InitSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize schema")
	}
	logger.Info().Msg("postgres connected and schema initialized")

	// ===== Redis (optional) =====
	var redisClient *redis.Client
	var sessionCache driven.SessionCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse redis url")
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		sessionCache = redisadapter.NewSessionCache(redisClient)
		logger.Info().Msg("redis session cache enabled")
	} else {
		logger.Info().Msg("redis not configured, running without session cache")
	}

	// ===== Driven adapters =====
	authAdapter := auth.NewAdapterWithCost(cfg.JWTSecret, cfg.BcryptCost)
	userStore := postgres.NewUserStore(db)
	documentStore := postgres.NewDocumentStore(db)
	roleStore := postgres.NewRoleStore(db)

	// ===== Services =====
	authService := services.NewAuthService(userStore, authAdapter, sessionCache)
	userService := services.NewUserService(userStore, sessionCache)
	documentService := services.NewDocumentService(documentStore)
	roleService := services.NewRoleService(roleStore)

	// Seed the role records (idempotent)
	if err := roleService.Seed(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed roles")
	}

	// ===== HTTP server =====
	serverCfg := http.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		Version:      version,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	var redisPinger http.Pinger
	if redisClient != nil {
		redisPinger = redisPing{client: redisClient}
	}

	server := http.NewServer(
		serverCfg,
		logger,
		authService,
		userService,
		documentService,
		roleService,
		db,
		redisPinger,
	)

	// Stop the server when the context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}

// redisPing adapts the redis client to the server's health check interface
type redisPing struct {
	client *redis.Client
}

func (p redisPing) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
