package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

const internalServerErrorMessage = "Internal server error"

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrUsernameTaken:      {http.StatusBadRequest, "Username already taken"},
	service.ErrInvalidCredentials: {http.StatusBadRequest, "Incorrect username or password"},
	service.ErrUnauthorized:       {http.StatusUnauthorized, "Unauthorized request"},
	service.ErrForbidden:          {http.StatusForbidden, "Forbidden"},

	store.ErrReferenceNotFound: {http.StatusBadRequest, "Referenced record does not exist."},
	store.ErrValueOutOfRange:   {http.StatusBadRequest, "Numeric value is out of range."},

	ErrMissingBearerToken: {http.StatusUnauthorized, "Missing bearer token"},
	ErrInvalidJSON:        {http.StatusBadRequest, "Invalid JSON was passed"},
	ErrRouteNotFound:      {http.StatusNotFound, "Not found"},
	ErrMethodNotAllowed:   {http.StatusMethodNotAllowed, "Method not allowed"},
}

// responseFromError picks the status code and client message for err.
// Anything unrecognised is a 500 whose details stay in the logs.
func responseFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Error()
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, internalServerErrorMessage
}

// writeError writes err as {"error": {"message": "..."}}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.NewErrorResponse(message), status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
