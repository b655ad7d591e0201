// Package remote is the gateway to the roster HTTP API.
package remote

import (
	"context"

	"github.com/hipolitesport/roster/internal/model"
)

// Client is the set of remote operations the roster needs.
// Write operations take the bearer credential explicitly so callers can
// refuse to call out when none is stored.
type Client interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	CreatePlayer(ctx context.Context, token string, p model.Player) (model.Player, error)
	UpdatePlayer(ctx context.Context, token, id string, p model.Player) (model.Player, error)
	DeletePlayer(ctx context.Context, token, id string) error
	Login(ctx context.Context, correo, contrasena string) (string, error)
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse is the body returned by POST /auth/login
type LoginResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
