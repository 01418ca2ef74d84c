// Package app initializes and orchestrates the main components of the
// application. It wires together the configuration, generation backend,
// review service and HTTP server.
package app

import (
	"fmt"
	"log/slog"

	"github.com/wikimentor/wiki-mentor/internal/config"
	"github.com/wikimentor/wiki-mentor/internal/llm"
	"github.com/wikimentor/wiki-mentor/internal/review"
	"github.com/wikimentor/wiki-mentor/internal/server"
)

// App holds the main application components.
type App struct {
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp sets up the application with all its dependencies. The Gemini
// API key is passed through unchecked: a missing key fails at call time
// rather than here.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing application",
		"server_port", cfg.ServerPort,
		"generator_model", cfg.GeneratorModelName,
	)

	generator := llm.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeneratorModelName, cfg.Temperature)

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		logger.Error("failed to initialize prompt manager", "error", err)
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	reviewService := review.NewService(generator, promptMgr, logger)
	httpServer := server.NewServer(cfg, reviewService, logger)

	logger.Info("application initialized successfully")
	return &App{
		cfg:    cfg,
		server: httpServer,
		logger: logger,
	}, nil
}

// Start runs the HTTP server and blocks until shutdown or error.
func (a *App) Start() error {
	err := a.server.Start()
	if err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down services")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("stopped successfully")
	return nil
}
