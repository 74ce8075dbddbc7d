// Package diag implements the ports.Diagnostics interface on log/slog.
// The sink is injected into each engine at construction — there is no
// process-wide logger state.
package diag

import (
	"log/slog"
	"os"
)

// Slog adapts a *slog.Logger to ports.Diagnostics.
type Slog struct {
	l *slog.Logger
}

// New returns a Diagnostics sink writing structured text to stderr at the
// given level ("debug", "info", or "error").
func New(level string) *Slog {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "error":
		lvl = slog.LevelError
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &Slog{l: slog.New(h)}
}

// Wrap adapts an existing slog.Logger.
func Wrap(l *slog.Logger) *Slog {
	return &Slog{l: l}
}

func (s *Slog) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *Slog) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *Slog) Error(msg string, args ...any) { s.l.Error(msg, args...) }
