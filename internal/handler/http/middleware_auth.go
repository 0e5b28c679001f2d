// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression are
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/models"
)

// authenticatedHandler is a handler that needs the caller's identity.
type authenticatedHandler func(w http.ResponseWriter, r *http.Request, user models.User)

// requireAuth enforces bearer authentication in front of next.
//
// It reads "Authorization: Bearer <token>", resolves the token to a stored
// user via [service.AuthService.Authenticate] and passes that user to next
// as an argument.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The header is absent, uses another scheme or carries no token
//     ("Missing bearer token").
//   - The token fails verification or names a user that no longer exists
//     ("Unauthorized request"). The cause is only logged.
func (h *Handler) requireAuth(next authenticatedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token in request")
			writeError(w, r, ErrMissingBearerToken)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next(w, r, user)
	}
}
