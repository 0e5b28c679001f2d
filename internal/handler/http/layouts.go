package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

func (h *Handler) listLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := h.services.LayoutService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, layouts, http.StatusOK)
}

func (h *Handler) createLayout(w http.ResponseWriter, r *http.Request) {
	var input models.MapLayoutInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.LayoutService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, r, created.ID, created)
}

func (h *Handler) getLayout(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceLayout)
	if err != nil {
		writeError(w, r, err)
		return
	}

	layout, err := h.services.LayoutService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, layout, http.StatusOK)
}

func (h *Handler) updateLayout(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceLayout)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.MapLayoutInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LayoutService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteLayout(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceLayout)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LayoutService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
