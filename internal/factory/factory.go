package factory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hipolitesport/roster/internal/api"
	"github.com/hipolitesport/roster/internal/dependencies/clock"
	"github.com/hipolitesport/roster/internal/dependencies/ids"
	"github.com/hipolitesport/roster/internal/metrics"
	"github.com/hipolitesport/roster/internal/services/auth"
	"github.com/hipolitesport/roster/internal/services/players"
	"github.com/hipolitesport/roster/internal/storage"
	"github.com/hipolitesport/roster/internal/storage/memory"
	redisstorage "github.com/hipolitesport/roster/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired components of the roster API server
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	Metrics *metrics.Service

	// Services
	AuthService    *auth.Service
	PlayersService *players.Service

	// Handler serves /api and /metrics
	Handler http.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Registry collects the server metrics (optional)
	// If nil, a fresh registry is used so repeated calls do not collide
	Registry *prometheus.Registry
	// AllowedOrigins for CORS (optional)
	AllowedOrigins []string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), ids.New(), cfg)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, idGen ids.Generator, cfg Config) (*App, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.NewService(registry)

	authCfg := cfg.AuthConfig
	if authCfg.TokenTTL == 0 {
		authCfg.TokenTTL = auth.DefaultConfig().TokenTTL
	}

	authService, err := auth.New(store, clk, idGen, m, authCfg, cfg.Logger)
	if err != nil {
		return nil, err
	}
	playersService := players.New(store, clk, idGen, m, cfg.Logger)

	handler := api.NewRouter(api.RouterConfig{
		Logger:         cfg.Logger,
		AuthService:    authService,
		PlayersService: playersService,
		MetricsHandler: metrics.NewHandler(registry),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return &App{
		Storage:        store,
		Clock:          clk,
		IDs:            idGen,
		Metrics:        m,
		AuthService:    authService,
		PlayersService: playersService,
		Handler:        handler,
	}, nil
}
