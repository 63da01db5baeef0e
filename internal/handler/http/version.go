package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports whether the database answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		writeServerError(w, r)
		return
	}

	writeOK(w, r, "ok", nil)
}
