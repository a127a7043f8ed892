package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/query"
)

// ActionRequest is the custom-action call sent by the dialogue engine.
type ActionRequest struct {
	NextAction string  `json:"next_action"`
	SenderID   string  `json:"sender_id"`
	Tracker    Tracker `json:"tracker"`
}

// Tracker is the slice of conversation state the actions read.
type Tracker struct {
	SenderID      string                     `json:"sender_id"`
	Slots         map[string]json.RawMessage `json:"slots"`
	LatestMessage struct {
		Text     string         `json:"text"`
		Entities []query.Entity `json:"entities"`
	} `json:"latest_message"`
}

// ActionResponse carries the events and bot utterances of one action run.
type ActionResponse struct {
	Events    []query.Event `json:"events"`
	Responses []Utterance   `json:"responses"`
}

// Utterance is one bot message.
type Utterance struct {
	Text string `json:"text"`
}

// ActionInfo names a registered action.
type ActionInfo struct {
	Name string `json:"name"`
}

// Turn maps the tracker onto an engine turn. Non-string slot values are
// treated as unset.
func (t *Tracker) Turn() query.Turn {
	return query.Turn{
		Text:     t.LatestMessage.Text,
		Entities: t.LatestMessage.Entities,
		Slots: query.Slots{
			Sport:    t.slot("sport"),
			League:   t.slot("league"),
			Team:     t.slot("team"),
			Matchday: t.slot("matchday"),
		},
	}
}

func (t *Tracker) slot(name string) string {
	raw, ok := t.Slots[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// RunAction executes one custom action for the dialogue engine.
// @Summary Run a custom action
// @Description Runs a named action against the tracker's latest message and slots. Returns slot/followup events and bot responses.
// @Tags actions
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Action call"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /webhook [post]
func (h *Handler) RunAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY",
			"Request body must be an action call", err.Error())
		return
	}

	res, err := h.engine.Run(req.NextAction, req.Tracker.Turn())
	if errors.Is(err, query.ErrUnknownAction) {
		respond.WriteErrorDetail(w, http.StatusNotFound, "ACTION_NOT_FOUND",
			fmt.Sprintf("No registered action is called '%s'", req.NextAction), err.Error())
		return
	}
	if err != nil {
		h.logger.Error("action failed", "action", req.NextAction, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ACTION_FAILED", "Action failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, toActionResponse(res))
}

// ListActions lists the registered action names.
// @Summary List actions
// @Description Returns every action the webhook can run.
// @Tags actions
// @Produce json
// @Success 200 {array} ActionInfo
// @Router /actions [get]
func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	names := h.engine.Actions()
	out := make([]ActionInfo, len(names))
	for i, n := range names {
		out[i] = ActionInfo{Name: n}
	}
	respond.WriteJSONObject(w, http.StatusOK, out)
}

func toActionResponse(res *query.Result) ActionResponse {
	out := ActionResponse{
		Events:    res.Events,
		Responses: make([]Utterance, len(res.Messages)),
	}
	if out.Events == nil {
		out.Events = []query.Event{}
	}
	for i, m := range res.Messages {
		out.Responses[i] = Utterance{Text: m}
	}
	return out
}
