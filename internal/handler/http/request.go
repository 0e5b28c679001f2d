package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/go-chi/chi/v5"
)

const idParam = "id"

// parseID reads the {id} path parameter. A value that is not a positive
// integer names no record, so it is reported as resource not found.
func parseID(r *http.Request, resource string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, idParam), 10, 64)
	if err != nil || id <= 0 {
		return 0, &service.NotFoundError{Resource: resource}
	}
	return id, nil
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		// an empty body supplies no fields
		return nil
	}
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("Invalid JSON was passed")
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeCreated answers 201 with Location pointing at the new record.
func writeCreated(w http.ResponseWriter, r *http.Request, id int64, body any) {
	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(id, 10)))
	writeJSON(w, r, body, http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
