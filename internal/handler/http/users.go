package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

func sanitizeUsers(users []models.User) []models.User {
	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	return sanitized
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, sanitizeUsers(users), http.StatusOK)
}

// createUser registers a player account.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input models.NewUser
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, r, user.ID, user.Sanitized())
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, user.Sanitized(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.UserUpdate
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listUserScores returns the authenticated caller's score history. The
// path id must be the caller's own id.
func (h *Handler) listUserScores(w http.ResponseWriter, r *http.Request, caller models.User) {
	id, err := parseID(r, service.ResourceUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	scores, err := h.services.UserService.ListScores(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, scores, http.StatusOK)
}
