// Package cli wires configuration, logging and the GTK runtime for the demo commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/internal/config"
	"github.com/bnema/gtkbridge/internal/logging"
	"github.com/bnema/gtkbridge/pkg/glib"
)

// Options are the global command-line overrides.
type Options struct {
	// ConfigDir replaces the XDG config directory when set.
	ConfigDir string
	// LogLevel overrides both the config file and GTKBRIDGE_LOG_LEVEL.
	LogLevel string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	Logger  zerolog.Logger

	ctx context.Context
}

// NewApp loads the configuration and builds the logger. GLib messages are routed to
// the logger from here on.
func NewApp(opts Options) (*App, error) {
	var mgr *config.Manager
	if opts.ConfigDir != "" {
		mgr = config.NewManagerIn(opts.ConfigDir)
	} else {
		var err error
		if mgr, err = config.NewManager(); err != nil {
			return nil, err
		}
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig()
	logCfg.TimeFormat = "15:04:05"
	logCfg.Format = cfg.Logging.Format
	logCfg.Output = opts.LogOutput
	if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		logCfg.Level = level
	}
	logCfg = logging.ConfigFromEnv(logCfg)
	if opts.LogLevel != "" {
		level, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		logCfg.Level = level
	}

	logger := logging.New(logCfg)
	mgr.SetLogger(logger.With().Str("component", "config").Logger())
	ctx := logging.WithContext(context.Background(), logger)
	logging.InstallGLibLogHandler(ctx, logger)
	glib.SetThreadChecks(cfg.ThreadChecks)

	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Logger:  logger,
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigDir is where `config init` writes: the --config-dir override or the XDG
// directory.
func ConfigDir(opts Options) (string, error) {
	if opts.ConfigDir != "" {
		return opts.ConfigDir, nil
	}
	return config.GetConfigDir()
}
