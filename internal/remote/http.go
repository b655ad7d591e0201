package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hipolitesport/roster/internal/model"
)

// DefaultBaseURL is where the API is expected during local development
const DefaultBaseURL = "http://localhost:5000/api"

// HTTPClient talks to the roster API over HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API rooted at baseURL
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// WithHTTPClient replaces the underlying transport client (for testing)
func (c *HTTPClient) WithHTTPClient(hc *http.Client) *HTTPClient {
	c.httpClient = hc
	return c
}

// ListPlayers fetches every player record
func (c *HTTPClient) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, http.MethodGet, "/jugadores", "", nil, &players); err != nil {
		return nil, err
	}
	if players == nil {
		players = []model.Player{}
	}
	return players, nil
}

// CreatePlayer sends a new record and returns it as stored
func (c *HTTPClient) CreatePlayer(ctx context.Context, token string, p model.Player) (model.Player, error) {
	p.ID = ""
	var created model.Player
	if err := c.do(ctx, http.MethodPost, "/admin", token, p, &created); err != nil {
		return model.Player{}, err
	}
	return created, nil
}

// UpdatePlayer replaces the record stored under id
func (c *HTTPClient) UpdatePlayer(ctx context.Context, token, id string, p model.Player) (model.Player, error) {
	var updated model.Player
	if err := c.do(ctx, http.MethodPut, "/admin/"+url.PathEscape(id), token, p, &updated); err != nil {
		return model.Player{}, err
	}
	return updated, nil
}

// DeletePlayer removes the record stored under id
func (c *HTTPClient) DeletePlayer(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/"+url.PathEscape(id), token, nil, nil)
}

// Login exchanges credentials for a signed token
func (c *HTTPClient) Login(ctx context.Context, correo, contrasena string) (string, error) {
	var resp LoginResponse
	req := LoginRequest{Correo: correo, Contrasena: contrasena}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "login response carried no token"}
	}
	return resp.Token, nil
}

// Health reports the status string served at /health. The hosted API may
// not expose it; the local server does.
func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, result any) error {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", slog.String("op", op), slog.String("error", err.Error()))
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	c.logger.Debug("request completed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}

	return nil
}
