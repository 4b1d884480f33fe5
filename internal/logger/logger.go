package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config selects the log level and destination.
type Config struct {
	Verbose bool
	Output  io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs a text handler at Info, or Debug when verbose.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// Timestamps only add noise to a short-lived build step.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

// L returns the logger installed by the last Setup, or a discarding one.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset discards all output until Setup is called again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
}
