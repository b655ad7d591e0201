// Package fake provides an in-memory remote.Client for tests.
package fake

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
)

// Calls counts invocations per operation
type Calls struct {
	List   int
	Create int
	Update int
	Delete int
	Login  int
}

// Total returns the number of calls of any kind
func (c Calls) Total() int {
	return c.List + c.Create + c.Update + c.Delete + c.Login
}

// Client keeps players in insertion order and assigns ids "1", "2", ...
type Client struct {
	mu      sync.Mutex
	players []model.Player
	nextID  int
	calls   Calls

	// Tokens maps "correo:contrasena" to the token Login returns
	Tokens map[string]string

	// Err, when set, is returned by every operation instead of running it
	Err error
}

// Ensure Client implements remote.Client
var _ remote.Client = (*Client)(nil)

// New creates a fake seeded with players; seeds without an id get one
func New(players ...model.Player) *Client {
	c := &Client{nextID: 1, Tokens: map[string]string{}}
	for _, p := range players {
		if p.ID == "" {
			p.ID = c.newID()
		}
		c.players = append(c.players, p)
	}
	return c
}

// Calls returns a snapshot of the call counters
func (c *Client) Calls() Calls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Stored returns the server-side copy of a player
func (c *Client) Stored(id string) (model.Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return model.Player{}, false
	}
	return c.players[i], true
}

func (c *Client) ListPlayers(ctx context.Context) ([]model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.List++
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]model.Player, len(c.players))
	copy(out, c.players)
	return out, nil
}

func (c *Client) CreatePlayer(ctx context.Context, token string, p model.Player) (model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Create++
	if err := c.check(token); err != nil {
		return model.Player{}, err
	}
	p.ID = c.newID()
	c.players = append(c.players, p)
	return p, nil
}

func (c *Client) UpdatePlayer(ctx context.Context, token, id string, p model.Player) (model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Update++
	if err := c.check(token); err != nil {
		return model.Player{}, err
	}
	i := c.index(id)
	if i < 0 {
		return model.Player{}, notFound()
	}
	p.ID = id
	c.players[i] = p
	return p, nil
}

func (c *Client) DeletePlayer(ctx context.Context, token, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Delete++
	if err := c.check(token); err != nil {
		return err
	}
	i := c.index(id)
	if i < 0 {
		return notFound()
	}
	c.players = append(c.players[:i], c.players[i+1:]...)
	return nil
}

func (c *Client) Login(ctx context.Context, correo, contrasena string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Login++
	if c.Err != nil {
		return "", c.Err
	}
	token, ok := c.Tokens[correo+":"+contrasena]
	if !ok {
		return "", &remote.APIError{Status: http.StatusUnauthorized, Message: "Incorrect email or password"}
	}
	return token, nil
}

func (c *Client) check(token string) error {
	if c.Err != nil {
		return c.Err
	}
	if token == "" {
		return &remote.APIError{Status: http.StatusUnauthorized, Message: "Authentication required"}
	}
	return nil
}

func (c *Client) index(id string) int {
	for i, p := range c.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Client) newID() string {
	id := strconv.Itoa(c.nextID)
	c.nextID++
	return id
}

func notFound() error {
	return &remote.APIError{Status: http.StatusNotFound, Message: "Player not found"}
}
