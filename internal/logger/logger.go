// Package logger configures structured logging for the service.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yukikurage/task-tracker-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a configured level name into a slog.Level. Unknown
// names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

// Writer returns stdout, tee'd to a rotating file when one is configured
func Writer(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	})
}

// New builds a logger writing to w in the configured format
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup builds the application logger and installs it as the default, so
// the slog package functions can be used directly.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Writer) {
	w := Writer(cfg)
	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger, w
}
