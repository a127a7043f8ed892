// Package handler provides HTTP handlers for all API endpoints.
// Action handlers run the query engine directly; every lookup reads the
// results document afresh, so handlers hold no dataset state.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
)

// Relayer forwards a raw chat message to the conversational engine.
// *relay.Client satisfies it.
type Relayer interface {
	Send(ctx context.Context, message string) ([]json.RawMessage, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	engine *query.Engine
	loader *dataset.Loader
	relay  Relayer
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(engine *query.Engine, loader *dataset.Loader, relay Relayer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine: engine,
		loader: loader,
		relay:  relay,
		logger: logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns service name, version, status and the registered actions.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Scoracle Chat Actions",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"actions": h.engine.Actions(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDataset loads the results document and reports which candidate
// answered.
// @Summary Dataset health check
// @Description Loads the results document from the configured candidates and reports the source and its size.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/dataset [get]
func (h *Handler) HealthCheckDataset(w http.ResponseWriter, r *http.Request) {
	d, source, err := h.loader.LoadWithSource()
	if err != nil {
		h.logger.Warn("dataset health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":     "unhealthy",
			"dataset":    "unavailable",
			"candidates": h.loader.Paths(),
			"error":      "No results document could be loaded",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"dataset":   "loaded",
		"source":    source,
		"summary":   d.Summary(),
		"leagues":   len(d.Leagues()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
