package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jonathan/student-dashboard/internal/config"
	"github.com/jonathan/student-dashboard/internal/dashboard"
	"github.com/jonathan/student-dashboard/internal/fixtures"
)

// resolveConfig layers environment over the optional config file over built-in defaults.
func resolveConfig(path string) (config.Config, error) {
	cfg := config.FromEnv()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setupLogger builds the process logger from the configured level and format.
func setupLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// newService builds the data access facade over the embedded fixtures, or over
// fixtures_dir when one is configured.
func newService(ctx context.Context, cfg config.Config) (*dashboard.Service, error) {
	store := fixtures.Embedded()
	if cfg.FixturesDir != "" {
		store = fixtures.New(os.DirFS(cfg.FixturesDir))
	}

	// Parse the fixtures up front so bad data fails at startup rather than on first request.
	if err := store.Preload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	return dashboard.New(store,
		dashboard.WithReadLatency(cfg.ReadLatencyOrDefault()),
		dashboard.WithAnalyzeLatency(cfg.AnalyzeLatencyOrDefault()),
	), nil
}
