package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/hipolitesport/roster/internal/api/apierr"
	"github.com/hipolitesport/roster/internal/api/handler"
	apimiddleware "github.com/hipolitesport/roster/internal/api/middleware"
	"github.com/hipolitesport/roster/internal/api/response"
	"github.com/hipolitesport/roster/internal/middleware"
	"github.com/hipolitesport/roster/internal/services/auth"
	"github.com/hipolitesport/roster/internal/services/players"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	PlayersService *players.Service
	// MetricsHandler is served at /metrics when set
	MetricsHandler http.Handler
	// AllowedOrigins for CORS; empty allows any origin
	AllowedOrigins []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// Create handlers
	playersHandler := handler.NewPlayersHandler(cfg.PlayersService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(logger)
	recoveryMiddleware := middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Public routes
	api.HandleFunc("/jugadores", playersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(apimiddleware.RequireAdmin)
	admin.HandleFunc("", playersHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", playersHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", playersHandler.Delete).Methods(http.MethodDelete)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(http.MethodGet)
	}

	// Browser clients call the API cross-origin; preflight must be answered
	// before routing, which only matches the declared methods
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
