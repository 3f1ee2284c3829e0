// Package logging builds the process slog.Logger from config.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jask/cardcheck/internal/config"
)

// New returns a logger writing to w. A nil w discards everything.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Open picks the log destination for the given UI mode. The terminal UI
// owns stdout/stderr, so it only logs when a file is configured. The
// returned closer is never nil.
func Open(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return New(f, cfg.Log), f, nil
	}
	if strings.EqualFold(cfg.UI.Mode, config.ModeTUI) {
		return New(nil, cfg.Log), nopCloser{}, nil
	}
	return New(os.Stderr, cfg.Log), nopCloser{}, nil
}

// ParseLevel maps a config level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
