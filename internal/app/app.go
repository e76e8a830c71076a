package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/dfakit/internal/config"
)

// App encapsulates the driver's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the driver. Reports go to outW and logs to
// logW, through an isolated logger configured from cfg.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
