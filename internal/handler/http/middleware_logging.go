package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// withLogging writes one access log line per request. The auth gate runs
// further down the chain, so the user id is not known here; it is logged by
// the handlers that need it.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
