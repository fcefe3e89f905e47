package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/curvedit"
	"github.com/aretw0/curvedit/internal/adapters/file"
	"github.com/aretw0/curvedit/internal/config"
	"github.com/aretw0/curvedit/internal/logging"
	"github.com/aretw0/curvedit/pkg/observability"
)

// Options are the global command-line settings.
type Options struct {
	Dir        string
	ConfigPath string
	// LogLevel overrides the level from the config file when not empty.
	LogLevel string
	Metrics  bool
}

// Session is the editor and its supporting services for one command run.
type Session struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Store   *file.Store
	Editor  *curvedit.Editor
}

// NewSession wires an Editor over the tables in opts.Dir with standard CLI conventions.
func NewSession(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
	}

	store := file.New(opts.Dir)
	editor := curvedit.New(
		curvedit.WithStore(store),
		curvedit.WithLogger(logger),
		curvedit.WithMetrics(metrics),
		curvedit.WithSamples(cfg.Samples),
		curvedit.WithMinKeyframeDistance(cfg.MinKeyframeDistance),
	)

	logger.Debug("session ready", "dir", store.BasePath, "config", opts.ConfigPath)
	return &Session{Config: cfg, Logger: logger, Metrics: metrics, Store: store, Editor: editor}, nil
}

// OpenAll opens the named tables, or every table in the directory when
// names is empty. Tables that fail to parse are reported together; the rest
// stay open.
func (s *Session) OpenAll(ctx context.Context, names []string) error {
	if len(names) == 0 {
		var err error
		if names, err = s.Store.List(ctx); err != nil {
			return fmt.Errorf("failed to list tables: %w", err)
		}
	}

	var errs []error
	for _, name := range names {
		if _, err := s.Editor.Open(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
