package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// withRecovery turns a panic in a downstream handler into the generic 500
// envelope. The panic value and stack trace are logged, never returned to
// the client. http.ErrAbortHandler is re-raised as net/http expects.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			writeServerError(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}
