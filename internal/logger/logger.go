// Package logger sets up the process-wide slog logger from LogConfig.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matthieukhl/salesgen/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var global *slog.Logger

// Init builds the logger and installs it as slog's default.
// The returned closer flushes the rotating file, if any.
func Init(cfg config.LogConfig) (io.Closer, error) {
	l, closer, err := New(cfg, os.Stdout, os.Stderr)
	if err != nil {
		return nil, err
	}
	global = l
	slog.SetDefault(l)
	return closer, nil
}

// New builds a logger without touching the global one
func New(cfg config.LogConfig, stdout, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	var output io.Writer

	switch cfg.Output {
	case "file", "both":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, err
		}
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		closer = file
		output = file
		if cfg.Output == "both" {
			output = io.MultiWriter(stderr, file)
		}
	case "stdout":
		output = stdout
	default:
		output = stderr
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler), closer, nil
}

// Get returns the installed logger, or slog's default before Init
func Get() *slog.Logger {
	if global == nil {
		return slog.Default()
	}
	return global
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
