package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

func (h *Handler) listMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := h.services.MapService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, maps, http.StatusOK)
}

func (h *Handler) createMap(w http.ResponseWriter, r *http.Request) {
	var input models.MapInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.MapService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, r, created.ID, created)
}

func (h *Handler) getMap(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceMap)
	if err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.services.MapService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, m, http.StatusOK)
}

func (h *Handler) updateMap(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceMap)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.MapInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MapService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMap(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceMap)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MapService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getMapLayout renders the map as its tiles ordered by position. An
// unknown or malformed id renders as an empty layout.
func (h *Handler) getMapLayout(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceMap)
	if err != nil {
		writeJSON(w, r, []models.LayoutTile{}, http.StatusOK)
		return
	}

	layout, err := h.services.MapService.Layout(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, layout, http.StatusOK)
}
