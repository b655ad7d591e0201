// Package session holds the decoded identity of the current user.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hipolitesport/roster/internal/model"
)

// Holder owns the current identity for one process. It is passed
// explicitly to the components that need it.
type Holder struct {
	store   CredentialStore
	decoder *Decoder
	logger  *slog.Logger

	mu       sync.RWMutex
	identity *model.Identity
}

// NewHolder loads and decodes any stored credential. A credential that
// fails to decode is removed and the holder starts unauthenticated.
func NewHolder(store CredentialStore, decoder *Decoder, logger *slog.Logger) *Holder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Holder{store: store, decoder: decoder, logger: logger}
	h.restore()
	return h
}

func (h *Holder) restore() {
	token, err := h.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			h.logger.Warn("could not read stored credential", slog.String("error", err.Error()))
		}
		return
	}

	identity, err := h.decoder.Decode(token)
	if err != nil {
		h.logger.Warn("discarding stored credential", slog.String("error", err.Error()))
		if clearErr := h.store.Clear(); clearErr != nil {
			h.logger.Warn("could not clear stored credential", slog.String("error", clearErr.Error()))
		}
		return
	}

	h.identity = &identity
	h.logger.Debug("restored session", slog.String("id", identity.ID), slog.String("rol", identity.Rol))
}

// Current returns the identity, if any
func (h *Holder) Current() (model.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.identity == nil {
		return model.Identity{}, false
	}
	return *h.identity, true
}

// IsAuthenticated reports whether an identity is set
func (h *Holder) IsAuthenticated() bool {
	_, ok := h.Current()
	return ok
}

// IsAdmin reports whether the current identity carries the admin role
func (h *Holder) IsAdmin() bool {
	identity, ok := h.Current()
	return ok && identity.IsAdmin()
}

// Login sets an already decoded identity as current
func (h *Holder) Login(identity model.Identity) {
	h.mu.Lock()
	h.identity = &identity
	h.mu.Unlock()
}

// Logout clears the stored credential and the identity
func (h *Holder) Logout() error {
	h.mu.Lock()
	h.identity = nil
	h.mu.Unlock()
	return h.store.Clear()
}

// Token returns the stored credential if there is one. It does not
// check that the credential is still valid.
func (h *Holder) Token() (string, bool) {
	token, err := h.store.Load()
	if err != nil {
		return "", false
	}
	return token, true
}

// Authenticator performs the remote login call
type Authenticator interface {
	Login(ctx context.Context, correo, contrasena string) (string, error)
}

// SignIn logs in remotely, stores the returned credential and makes its
// identity current
func SignIn(ctx context.Context, auth Authenticator, h *Holder, correo, contrasena string) (model.Identity, error) {
	token, err := auth.Login(ctx, correo, contrasena)
	if err != nil {
		return model.Identity{}, err
	}

	identity, err := h.decoder.Decode(token)
	if err != nil {
		return model.Identity{}, err
	}

	if err := h.store.Save(token); err != nil {
		return model.Identity{}, fmt.Errorf("failed to store credential: %w", err)
	}

	h.Login(identity)
	h.logger.Info("signed in", slog.String("id", identity.ID), slog.String("rol", identity.Rol))
	return identity, nil
}
