package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
)

// AskRequest is a self-contained turn for clients that keep their own
// slots. Without an action the sport router runs first.
type AskRequest struct {
	query.Turn
	Action string `json:"action,omitempty"`
}

// Ask answers one turn without going through the dialogue engine.
// @Summary Ask a question
// @Description Runs the sport router (and its follow-up) or a named action on one turn and returns messages and events. The caller applies slot events itself.
// @Tags actions
// @Accept json
// @Produce json
// @Param request body AskRequest true "Turn"
// @Success 200 {object} query.Result
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY",
			"Request body must be a turn", err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" && req.Action == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEXT", "text or action is required")
		return
	}

	if req.Action == "" {
		respond.WriteJSONObject(w, http.StatusOK, normalize(h.engine.Converse(req.Turn)))
		return
	}

	res, err := h.engine.Run(req.Action, req.Turn)
	if errors.Is(err, query.ErrUnknownAction) {
		respond.WriteErrorDetail(w, http.StatusNotFound, "ACTION_NOT_FOUND", "Unknown action", req.Action)
		return
	}
	if err != nil {
		h.logger.Error("action failed", "action", req.Action, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ACTION_FAILED", "Action failed")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, normalize(res))
}

// normalize renders empty lists as [] rather than null.
func normalize(res *query.Result) *query.Result {
	if res.Messages == nil {
		res.Messages = []string{}
	}
	if res.Events == nil {
		res.Events = []query.Event{}
	}
	return res
}

// GetLeagues summarizes every league of the results document.
// @Summary List leagues
// @Description Returns per-league counts of standings rows, matchdays, matches and upcoming matches. Supports If-None-Match.
// @Tags dataset
// @Produce json
// @Success 200 {array} dataset.LeagueSummary
// @Success 304 "Not Modified"
// @Router /api/v1/leagues [get]
func (h *Handler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	leagues := h.loader.Load().Leagues()
	if leagues == nil {
		leagues = []dataset.LeagueSummary{}
	}
	data, err := json.Marshal(leagues)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "ENCODE_FAILED", "Could not encode leagues", err.Error())
		return
	}

	etag := respond.ComputeETag(data)
	if respond.ETagMatches(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag)
}
