package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	user, token, err := h.services.IdentityService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Info().Str("user", user.ID).Msg("user registered")

	h.setTokenCookie(w, token.SignedString)
	writeOK(w, r, "registered", models.AuthResult{User: user, Token: token.SignedString})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	user, token, err := h.services.IdentityService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Debug().Str("user", user.ID).Msg("user successfully logged in")

	h.setTokenCookie(w, token.SignedString)
	writeOK(w, r, "logged in", models.AuthResult{User: user, Token: token.SignedString})
}

// logout is stateless: the server keeps no sessions, so clearing the cookie
// is all there is to do.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	writeOK(w, r, "logged out", nil)
}
