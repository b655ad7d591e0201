package players

import (
	"context"
	"log/slog"
	"time"

	"github.com/hipolitesport/roster/internal/dependencies/clock"
	"github.com/hipolitesport/roster/internal/dependencies/ids"
	"github.com/hipolitesport/roster/internal/metrics"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/storage"
)

// Service manages the stored roster
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
	metrics metrics.Metrics
	logger  *slog.Logger
}

// New creates a new players Service
func New(store storage.Storage, clk clock.Clock, idGen ids.Generator, m metrics.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if m == nil {
		m = metrics.Nop{}
	}
	return &Service{
		storage: store,
		clock:   clk,
		ids:     idGen,
		metrics: m,
		logger:  logger,
	}
}

// List returns every player in creation order
func (s *Service) List(ctx context.Context) ([]model.Player, error) {
	stored, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, len(stored))
	for i, p := range stored {
		players[i] = *p
	}

	s.metrics.SetRosterSize(len(players))
	return players, nil
}

// Get returns one player
func (s *Service) Get(ctx context.Context, id string) (model.Player, error) {
	p, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return model.Player{}, err
	}
	return *p, nil
}

// Create stores p under a new id, stamped with the creation time.
// Any id or fecha sent by the caller is ignored.
func (s *Service) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := p.Validate(); err != nil {
		return model.Player{}, err
	}

	p.ID = s.ids.NewID()
	p.Fecha = s.clock.Now().Format(time.RFC3339)

	if err := s.storage.SavePlayer(ctx, &p); err != nil {
		return model.Player{}, err
	}

	s.metrics.IncPlayerWrite(metrics.OpCreate)
	s.logger.Info("player created", slog.String("id", p.ID), slog.String("nombre", p.Nombre))
	return p, nil
}

// Update replaces the player stored under id with p wholesale. The id and
// creation time are kept.
func (s *Service) Update(ctx context.Context, id string, p model.Player) (model.Player, error) {
	existing, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return model.Player{}, err
	}

	if err := p.Validate(); err != nil {
		return model.Player{}, err
	}

	p.ID = existing.ID
	p.Fecha = existing.Fecha

	if err := s.storage.SavePlayer(ctx, &p); err != nil {
		return model.Player{}, err
	}

	s.metrics.IncPlayerWrite(metrics.OpUpdate)
	s.logger.Info("player updated", slog.String("id", id))
	return p, nil
}

// Delete removes the player stored under id
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.metrics.IncPlayerWrite(metrics.OpDelete)
	s.logger.Info("player deleted", slog.String("id", id))
	return nil
}
