package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type completeRequest struct {
	IdentityID string `json:"identity_id"`
}

type completeResponse struct {
	Completed bool `json:"completed"`
}

// handleComplete records that the ad behind {token} finished playing.
// Unknown tokens, foreign identities and repeats answer completed=false
// rather than an error so the beacon reveals nothing about other tokens.
func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		h.writeError(w, http.StatusBadRequest, "missing token")
		return
	}
	var body completeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IdentityID == "" {
		h.writeError(w, http.StatusBadRequest, "identity_id is required")
		return
	}
	ok := h.svc.CompleteImpression(r.Context(), token, body.IdentityID)
	h.writeJSON(w, http.StatusOK, completeResponse{Completed: ok})
}
