// Package logging configures the process-wide slog logger for gridtool.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu   sync.Mutex
	file *os.File // log file opened by the last Init, if any
)

// Init installs a text slog handler as the default logger.
//
// path: log file path, appended to. If empty, logs go to stderr so they never
// mix with command output on stdout.
// level: "debug", "info", "warn" or "error"; anything else means info.
//
// A file opened by an earlier Init is closed once the new handler is in place.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	var (
		w    io.Writer = os.Stderr
		next *os.File
	)
	if path != "" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w, next = f, f
	}
	slog.SetDefault(New(w, level))
	prev := file
	file = next
	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close closes the log file opened by Init, if any, and points the default
// logger back at stderr. It is safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	slog.SetDefault(New(os.Stderr, "info"))
	err := file.Close()
	file = nil
	return err
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
