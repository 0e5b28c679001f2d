package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

func (h *Handler) listScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.services.ScoreService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, scores, http.StatusOK)
}

// createScore records a game result for the authenticated caller. Any
// user_id in the body is ignored.
func (h *Handler) createScore(w http.ResponseWriter, r *http.Request, caller models.User) {
	var input models.ScoreInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ScoreService.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, r, created.ID, created)
}

func (h *Handler) getScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceScore)
	if err != nil {
		writeError(w, r, err)
		return
	}

	score, err := h.services.ScoreService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, score, http.StatusOK)
}

func (h *Handler) updateScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceScore)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ScoreInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ScoreService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceScore)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ScoreService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
