// Command rosterd serves the roster REST API: a public player list, login,
// and admin-only player writes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/hipolitesport/roster/internal/api"
	"github.com/hipolitesport/roster/internal/factory"
	"github.com/hipolitesport/roster/internal/logging"
	"github.com/hipolitesport/roster/internal/model"
	redisstorage "github.com/hipolitesport/roster/internal/storage/redis"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := logging.New(os.Stdout, logging.Options{
		Level:  getEnvOrDefault("ROSTERD_LOG_LEVEL", "info"),
		Format: logging.FormatJSON,
	})
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(logger *slog.Logger) error {
	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("ROSTERD_STORAGE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return errors.New("REDIS_URL required when ROSTERD_STORAGE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	cfg.AuthConfig.Secret = []byte(os.Getenv("ROSTERD_JWT_SECRET"))
	if ttl := os.Getenv("ROSTERD_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return err
		}
		cfg.AuthConfig.TokenTTL = d
	}
	if origins := os.Getenv("ROSTERD_CORS_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	app, err := factory.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the admin account when credentials are provided
	adminEmail := os.Getenv("ROSTERD_ADMIN_EMAIL")
	adminPassword := os.Getenv("ROSTERD_ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if _, err := app.AuthService.EnsureAccount(ctx, adminEmail, adminPassword, model.RoleAdmin); err != nil {
			return err
		}
	} else {
		logger.Warn("no admin account configured; set ROSTERD_ADMIN_EMAIL and ROSTERD_ADMIN_PASSWORD")
	}

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("ROSTERD_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return err
		}
		serverConfig.Port = p
	}
	server := api.NewServer(app.Handler, serverConfig, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
