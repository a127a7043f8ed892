// Command api is the Scoracle chat action server. It answers the dialogue
// engine's custom-action calls and relays browser chat messages to it.
//
// Usage:
//
//	scoracle-chat-api
//	API_PORT=8080 DATASET_PATHS=data/results.yaml scoracle-chat-api

// @title Scoracle Chat Actions API
// @version 1.0.0
// @description Custom-action webhook, local ask endpoint and chat relay for the football and basketball results assistant.
// @host localhost:5055
// @BasePath /
// @schemes http https
// @contact.name Scoracle
// @license.name MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/albapepper/scoracle-chat/docs" // swagger docs
	"github.com/albapepper/scoracle-chat/internal/api"
	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
	"github.com/albapepper/scoracle-chat/internal/relay"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg := config.Load()
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	logger.Info("configuration loaded", "environment", cfg.Environment, "debug", cfg.Debug)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := dataset.NewLoader(cfg.DatasetPaths, logger)
	if _, source, err := loader.LoadWithSource(); err != nil {
		logger.Warn("no results document yet, lookups will answer from an empty skeleton",
			"candidates", cfg.DatasetPaths, "error", err)
	} else {
		logger.Info("results document found", "source", source)
	}

	engine := query.NewDefaultEngine(loader, logger)
	client := relay.NewClient(cfg.EngineURL, cfg.EngineSender, cfg.EngineTimeout, cfg.EngineRequestsPerMinute, logger)
	router := api.NewRouter(engine, loader, client, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.EngineTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Scoracle Chat API",
			"addr", addr,
			"engine", client.URL(),
			"actions", engine.Actions(),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
