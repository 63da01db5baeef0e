package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/go-chi/chi/v5"
)

// createTravelMap answers a known city with the existing row attached to
// the failure envelope.
func (h *Handler) createTravelMap(w http.ResponseWriter, r *http.Request) {
	var req models.CityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	travelMap, err := h.services.TravelMapService.Create(r.Context(), req.CityName)
	if errors.Is(err, store.ErrCityAlreadyExists) {
		writeError(w, r, err, travelMap)
		return
	}
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "city created", travelMap)
}

func (h *Handler) listTravelMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := h.services.TravelMapService.List(r.Context(), r.URL.Query().Get("cityName"))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	if maps == nil {
		maps = []models.TravelMap{}
	}

	writeOK(w, r, "ok", maps)
}

func (h *Handler) getTravelMap(w http.ResponseWriter, r *http.Request) {
	travelMap, err := h.services.TravelMapService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "ok", travelMap)
}

func (h *Handler) renameTravelMap(w http.ResponseWriter, r *http.Request) {
	var req models.CityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	travelMap, err := h.services.TravelMapService.Rename(r.Context(), chi.URLParam(r, "id"), req.CityName)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "city updated", travelMap)
}

func (h *Handler) deleteTravelMap(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TravelMapService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeOK(w, r, "city deleted", nil)
}

func (h *Handler) myFootprints(w http.ResponseWriter, r *http.Request) {
	footprints, err := h.services.TravelMapService.Footprints(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	if footprints == nil {
		footprints = []models.Footprint{}
	}

	writeOK(w, r, "ok", footprints)
}

func (h *Handler) myCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.services.TravelMapService.MyCities(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	if cities == nil {
		cities = []models.CityRef{}
	}

	writeOK(w, r, "ok", cities)
}
