package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/relay"
)

const engineErrorText = "There was an error contacting the bot."

// SendMessage relays a chat message to the dialogue engine.
// @Summary Relay a chat message
// @Description Forwards the form field "message" to the dialogue engine and returns its reply list verbatim. Engine failures become a single synthetic reply.
// @Tags relay
// @Accept x-www-form-urlencoded
// @Produce json
// @Param message formData string true "User message"
// @Success 200 {array} Utterance
// @Router /send_message [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	message := r.FormValue("message")

	items, err := h.relay.Send(r.Context(), message)
	switch {
	case errors.Is(err, relay.ErrEngineStatus):
		h.logger.Warn("engine rejected message", "error", err)
		respond.WriteJSONObject(w, http.StatusOK, []Utterance{{Text: engineErrorText}})
		return
	case err != nil:
		h.logger.Warn("engine unreachable", "error", err)
		respond.WriteJSONObject(w, http.StatusOK, []Utterance{{Text: fmt.Sprintf("Request error: %v", err)}})
		return
	}

	if items == nil {
		respond.WriteJSONObject(w, http.StatusOK, []Utterance{})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, items)
}
