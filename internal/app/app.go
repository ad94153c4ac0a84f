package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/lytgrid/internal/config"
	"github.com/specialistvlad/lytgrid/internal/ctxlog"
)

// App compiles layouts according to its Config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App. Reports go to outW unless an output path is
// configured; logs go to logW. When cfg names a project file it is loaded
// with loader and layered under cfg. A project file that cannot be loaded is
// a fatal startup error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	effective := cfg
	if cfg.ConfigPath != "" {
		bootstrap := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
		ctx := ctxlog.WithLogger(context.Background(), bootstrap)

		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load project file: %w", err))
		}
		effective = cfg.withProject(model)
		if err := effective.validate(); err != nil {
			panic(fmt.Errorf("invalid project file %s: %w", cfg.ConfigPath, err))
		}
		bootstrap.Debug("Project file merged.", "path", cfg.ConfigPath)
	}
	effective = effective.withDefaults()

	logger := newLogger(effective.LogLevel, effective.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", effective.LogLevel, "format", effective.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: effective,
	}
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
