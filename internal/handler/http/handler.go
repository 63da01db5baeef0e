package http

import (
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
)

const (
	defaultTokenDuration = 24 * time.Hour
	defaultAuthRateLimit = 20
)

type Handler struct {
	services *service.Services

	// cookie settings mirror the token issued on register/login
	tokenDuration time.Duration
	secureCookie  bool

	// authRateLimit caps register/login requests per IP per minute.
	authRateLimit int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:      services,
		tokenDuration: defaultTokenDuration,
		authRateLimit: defaultAuthRateLimit,
		logger:        logger,
	}
	if cfg != nil {
		if cfg.App.TokenDuration > 0 {
			h.tokenDuration = cfg.App.TokenDuration
		}
		if cfg.Server.AuthRateLimit > 0 {
			h.authRateLimit = cfg.Server.AuthRateLimit
		}
		h.secureCookie = cfg.App.CookieSecure()
	}

	return h
}
