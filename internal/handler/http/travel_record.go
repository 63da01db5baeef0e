package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTravelRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	created, err := h.services.TravelRecordService.Create(r.Context(), currentUserID(r), req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Info().
		Str("record", created.ID).
		Int("albumsCreated", created.AlbumsCreated).
		Int("albumsFailed", created.AlbumsFailed).
		Msg("travel record created")

	writeOK(w, r, "travel record created", created)
}

func (h *Handler) listPublicTravelRecords(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.TravelRecordService.ListPublic(r.Context(), recordQueryFromRequest(r))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", page)
}

// listMyTravelRecords ignores sortBy/sortOrder; the owner's list is always
// newest first.
func (h *Handler) listMyTravelRecords(w http.ResponseWriter, r *http.Request) {
	query := recordQueryFromRequest(r)
	query.OwnerID = currentUserID(r)

	page, err := h.services.TravelRecordService.ListMine(r.Context(), query)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", page)
}

func (h *Handler) getTravelRecordDetail(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.TravelRecordService.GetDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", record)
}

func (h *Handler) updateTravelRecord(w http.ResponseWriter, r *http.Request) {
	var patch models.RecordPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err, nil)
		return
	}

	record, err := h.services.TravelRecordService.Update(r.Context(), currentUserID(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "travel record updated", record)
}

func (h *Handler) deleteTravelRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TravelRecordService.Delete(r.Context(), currentUserID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "travel record deleted", nil)
}

func (h *Handler) myTimeline(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.TravelRecordService.Timeline(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	if entries == nil {
		entries = []models.TimelineEntry{}
	}

	writeOK(w, r, "ok", entries)
}
