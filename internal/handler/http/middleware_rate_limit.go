package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/go-chi/httprate"
)

// withAuthRateLimit limits register/login per client IP and endpoint.
// Rejected requests get HTTP 429 with the standard envelope.
func (h *Handler) withAuthRateLimit(next http.Handler) http.Handler {
	limiter := httprate.Limit(
		h.authRateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, r, http.StatusTooManyRequests, models.Envelope{
				Code:    http.StatusTooManyRequests,
				Message: "too many requests",
			})
		}),
	)

	return limiter(next)
}
