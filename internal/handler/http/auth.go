package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

// login exchanges a username and password for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")
	writeJSON(w, r, models.LoginResponse{AuthToken: token.SignedString}, http.StatusOK)
}
