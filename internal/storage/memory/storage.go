package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players     map[string]model.Player
	playerOrder []string
	accounts    map[string]model.Account
	emailIndex  map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[string]model.Player),
		accounts:   make(map[string]model.Account),
		emailIndex: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		p := s.players[id]
		players = append(players, &p)
	}
	return players, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		s.playerOrder = append(s.playerOrder, player.ID)
	}
	s.players[player.ID] = *player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.players, id)
	s.playerOrder = slices.DeleteFunc(s.playerOrder, func(other string) bool {
		return other == id
	})
	return nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if previous, ok := s.accounts[account.ID]; ok {
		delete(s.emailIndex, normalizeEmail(previous.Correo))
	}
	s.accounts[account.ID] = *account
	s.emailIndex[normalizeEmail(account.Correo)] = account.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return &account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, correo string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[normalizeEmail(correo)]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return &account, nil
}

func normalizeEmail(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}
