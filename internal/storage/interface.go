package storage

import (
	"context"

	"github.com/hipolitesport/roster/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. ListPlayers returns players in the order they
	// were first saved; saving an existing id replaces it in place.
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, correo string) (*model.Account, error)
}
