package http

import (
	"net/http"

	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

func (h *Handler) listTiles(w http.ResponseWriter, r *http.Request) {
	tiles, err := h.services.TileService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	sanitized := make([]models.Tile, len(tiles))
	for i, t := range tiles {
		sanitized[i] = t.Sanitized()
	}
	writeJSON(w, r, sanitized, http.StatusOK)
}

func (h *Handler) createTile(w http.ResponseWriter, r *http.Request) {
	var input models.TileInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.TileService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCreated(w, r, created.ID, created.Sanitized())
}

func (h *Handler) getTile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceTile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tile, err := h.services.TileService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, tile.Sanitized(), http.StatusOK)
}

func (h *Handler) updateTile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceTile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.TileInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TileService.Update(r.Context(), id, input); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, service.ResourceTile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TileService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
