package cli

import (
	"io"
	"log/slog"

	"github.com/hipolitesport/roster/internal/dependencies/clock"
	"github.com/hipolitesport/roster/internal/logging"
	"github.com/hipolitesport/roster/internal/model"
	"github.com/hipolitesport/roster/internal/remote"
	"github.com/hipolitesport/roster/internal/roster"
	"github.com/hipolitesport/roster/internal/session"
)

// App is everything a command needs, built once per invocation
type App struct {
	Logger    *slog.Logger
	Remote    *remote.HTTPClient
	Session   *session.Holder
	Directory *roster.Directory
	Editor    *roster.Editor
}

// NewApp wires the session, directory and editor for cfg. Diagnostics go
// to logOut.
func NewApp(cfg *Config, logOut io.Writer) *App {
	level := "warn"
	if cfg.Verbose {
		level = "debug"
	}
	logger := logging.New(logOut, logging.Options{Level: level, Format: logging.FormatText})

	httpClient := remote.NewHTTPClient(cfg.ServerURL, logger)
	store := session.NewFileStore(cfg.TokenFile)
	holder := session.NewHolder(store, session.NewDecoder(clock.New()), logger)
	dir := roster.NewDirectory(httpClient, logger)

	return &App{
		Logger:    logger,
		Remote:    httpClient,
		Session:   holder,
		Directory: dir,
		Editor:    roster.NewEditor(holder, httpClient, dir, logger),
	}
}

// RequireAdmin fails unless the stored session belongs to an admin
func (a *App) RequireAdmin() error {
	if !a.Session.IsAuthenticated() {
		return model.ErrUnauthorized
	}
	if !a.Session.IsAdmin() {
		return model.ErrForbidden
	}
	return nil
}
