package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTravelAlbum(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlbumRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	album, err := h.services.TravelAlbumService.Create(r.Context(), currentUserID(r), req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "photo added", album)
}

func (h *Handler) deleteTravelAlbum(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TravelAlbumService.Delete(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "photo deleted", nil)
}

func (h *Handler) listMyPhotos(w http.ResponseWriter, r *http.Request) {
	h.writeMyPhotos(w, r, defaultAlbumPageSize)
}

func (h *Handler) writeMyPhotos(w http.ResponseWriter, r *http.Request, defaultPageSize int) {
	query := albumQueryFromRequest(r, defaultPageSize)
	query.OwnerID = currentUserID(r)

	page, err := h.services.TravelAlbumService.ListMine(r.Context(), query)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", page)
}
