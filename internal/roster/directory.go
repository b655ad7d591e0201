// Package roster implements the player directory and the admin editor on
// top of a remote.Client.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
)

// Stat selects the statistic a leaderboard ranks by
type Stat string

const (
	StatGoals   Stat = "goles"
	StatAssists Stat = "asistencias"
)

// ParseStat accepts "goals"/"goles" and "assists"/"asistencias"
func ParseStat(s string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "goals", "goles":
		return StatGoals, nil
	case "assists", "asistencias":
		return StatAssists, nil
	default:
		return "", fmt.Errorf("unknown statistic %q", s)
	}
}

func (s Stat) of(p model.Player) int {
	if s == StatAssists {
		return p.Asistencias
	}
	return p.Goles
}

// Directory is the read-only view of the roster. It holds the last fetched
// list in fetch order and derives sorted views from it.
type Directory struct {
	client remote.Client
	logger *slog.Logger

	mu      sync.RWMutex
	players []model.Player
	loaded  bool
}

// NewDirectory creates an empty directory; call Refresh to load it
func NewDirectory(client remote.Client, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Directory{client: client, logger: logger}
}

// Refresh replaces the list with a fresh fetch. On failure the previous
// list is kept.
func (d *Directory) Refresh(ctx context.Context) error {
	players, err := d.client.ListPlayers(ctx)
	if err != nil {
		d.logger.Warn("failed to fetch players", slog.String("error", err.Error()))
		return fmt.Errorf("fetch players: %w", err)
	}

	d.mu.Lock()
	d.players = players
	d.loaded = true
	d.mu.Unlock()

	d.logger.Debug("fetched players", slog.Int("count", len(players)))
	return nil
}

// Loaded reports whether a fetch has ever succeeded
func (d *Directory) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

// Players returns the roster ordered by goals, highest first
func (d *Directory) Players() []model.Player {
	return d.Leaderboard(StatGoals)
}

// TopScorers ranks players by goals
func (d *Directory) TopScorers() []model.Player {
	return d.Leaderboard(StatGoals)
}

// TopAssists ranks players by assists
func (d *Directory) TopAssists() []model.Player {
	return d.Leaderboard(StatAssists)
}

// Leaderboard returns a copy of the list sorted by stat descending.
// Ties keep fetch order.
func (d *Directory) Leaderboard(stat Stat) []model.Player {
	d.mu.RLock()
	out := slices.Clone(d.players)
	d.mu.RUnlock()

	return Rank(out, stat)
}

// Rank stable-sorts players in place by stat descending and returns them
func Rank(players []model.Player, stat Stat) []model.Player {
	slices.SortStableFunc(players, func(a, b model.Player) int {
		return stat.of(b) - stat.of(a)
	})
	return players
}

// Find returns the player with id from the last fetch
func (d *Directory) Find(id string) (model.Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, p := range d.players {
		if p.ID == id {
			return p, true
		}
	}
	return model.Player{}, false
}

// Remove drops id from the local list without refetching
func (d *Directory) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.players = slices.DeleteFunc(d.players, func(p model.Player) bool {
		return p.ID == id
	})
}
