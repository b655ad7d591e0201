package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hipolitesport/roster/internal/dependencies/clock"
	"github.com/hipolitesport/roster/internal/dependencies/ids"
	"github.com/hipolitesport/roster/internal/metrics"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/storage"
)

// ErrInvalidToken is returned by Verify for any token it does not accept
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload of an issued token
type Claims struct {
	ID  string `json:"id"`
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// Config holds configuration for the auth service
type Config struct {
	// Secret signs tokens with HS256. When empty a random secret is
	// generated, so tokens do not survive a restart.
	Secret   []byte
	TokenTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenTTL: 24 * time.Hour,
	}
}

// Service handles accounts, login and token verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
	metrics metrics.Metrics
	logger  *slog.Logger

	secret   []byte
	tokenTTL time.Duration
	parser   *jwt.Parser
}

// New creates a new auth Service
func New(store storage.Storage, clk clock.Clock, idGen ids.Generator, m metrics.Metrics, cfg Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	if len(cfg.Secret) == 0 {
		cfg.Secret = make([]byte, 32)
		if _, err := rand.Read(cfg.Secret); err != nil {
			return nil, fmt.Errorf("failed to generate secret: %w", err)
		}
		logger.Warn("no signing secret configured, using a random one")
	}
	if m == nil {
		m = metrics.Nop{}
	}

	return &Service{
		storage:  store,
		clock:    clk,
		ids:      idGen,
		metrics:  m,
		logger:   logger,
		secret:   cfg.Secret,
		tokenTTL: cfg.TokenTTL,
		// Expiry is checked against the injected clock in Verify
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// EnsureAccount creates the account for correo, or resets its password
// and role if it already exists
func (s *Service) EnsureAccount(ctx context.Context, correo, contrasena, rol string) (*model.Account, error) {
	correo = strings.TrimSpace(correo)
	if correo == "" || contrasena == "" {
		return nil, errors.New("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := s.storage.GetAccountByEmail(ctx, correo)
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		account = &model.Account{ID: s.ids.NewID(), Correo: correo}
	case err != nil:
		return nil, err
	}

	account.PasswordHash = string(hash)
	account.Rol = rol

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account ready", slog.String("id", account.ID), slog.String("rol", rol))
	return account, nil
}

// Login checks the password for correo and returns a signed token
func (s *Service) Login(ctx context.Context, correo, contrasena string) (string, error) {
	account, err := s.storage.GetAccountByEmail(ctx, correo)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			s.metrics.IncLogin(false)
			return "", model.ErrInvalidLogin
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(contrasena)); err != nil {
		s.metrics.IncLogin(false)
		return "", model.ErrInvalidLogin
	}

	token, err := s.Issue(model.Identity{ID: account.ID, Rol: account.Rol})
	if err != nil {
		return "", err
	}

	s.metrics.IncLogin(true)
	return token, nil
}

// Issue signs a token for identity, valid for the configured TTL
func (s *Service) Issue(identity model.Identity) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		ID:  identity.ID,
		Rol: identity.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of token and returns its identity
func (s *Service) Verify(token string) (model.Identity, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !claims.VerifyExpiresAt(s.clock.Now(), true) {
		return model.Identity{}, fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	if claims.ID == "" || claims.Rol == "" {
		return model.Identity{}, fmt.Errorf("%w: missing id or rol", ErrInvalidToken)
	}

	return model.Identity{ID: claims.ID, Rol: claims.Rol}, nil
}
