package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

const tokenCookieName = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is taken from the "Authorization: Bearer <token>" header or,
// when the header is absent, from the http-only token cookie set on
// register/login. On success the user id is stored in the request context
// under [utils.UserIDCtxKey].
//
// Every rejection is answered with HTTP 401 and the
// {code:401, success:false} envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Info().Err(err).Msg("unauthenticated request")
			writeUnauthorized(w, r, "login required")
			return
		}

		ctx := r.Context()
		token, err := h.services.IdentityService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			writeUnauthorized(w, r, "authentication failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// tokenFromRequest prefers the Authorization header over the cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		return utils.ParseBearerToken(header)
	}

	cookie, err := r.Cookie(tokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingToken
	}

	return cookie.Value, nil
}

// setTokenCookie mirrors a freshly issued token into the http-only cookie.
func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
