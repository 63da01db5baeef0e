package service

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version and falls back to the
// version injected at build time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Health").Msg("database ping failed")
		return err
	}
	return nil
}
