// Package logging builds the slog loggers used by the CLI and the server.
// Records are rendered by charmbracelet/log.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects how records are rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures New
type Options struct {
	Level  string
	Format Format
	Prefix string
}

// New returns a slog.Logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, opts Options) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       formatter(opts.Format),
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}

// ParseLevel maps a level name to a charmbracelet level
func ParseLevel(s string) log.Level {
	if s == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func formatter(f Format) log.Formatter {
	if f == FormatJSON {
		return log.JSONFormatter
	}
	return log.TextFormatter
}
