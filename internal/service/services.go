package service

import (
	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
)

type Services struct {
	IdentityService     IdentityService
	TravelMapService    TravelMapService
	TravelRecordService TravelRecordService
	TravelAlbumService  TravelAlbumService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, geocoder adapter.Geocoder, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	travelMapService := NewTravelMapService(storages.TravelMapRepository, geocoder, logger)
	travelRecordService := NewTravelRecordValidationService().Wrap(
		NewTravelRecordService(storages.TravelRecordRepository, storages.TravelAlbumRepository, travelMapService, logger),
	)
	travelAlbumService := NewTravelAlbumValidationService().Wrap(
		NewTravelAlbumService(storages.TravelAlbumRepository, logger),
	)

	return &Services{
		IdentityService:     NewIdentityService(storages.UserRepository, cfg.App, logger),
		TravelMapService:    travelMapService,
		TravelRecordService: travelRecordService,
		TravelAlbumService:  travelAlbumService,
		AppInfoService:      appInfoService,
	}, nil
}
