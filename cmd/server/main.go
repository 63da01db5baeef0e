package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/handler"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/server"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-travel-journal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring logger")
	}
	log = leveled

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	geocoder := adapter.NewAMapGeocoder(cfg.Adapter.Geocoder)
	if cfg.Adapter.Redis.Address != "" {
		rdb, err := adapter.NewRedisClient(ctx, cfg.Adapter.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer rdb.Close()

		geocoder = adapter.NewCoordinatesCache(rdb, cfg.Adapter.Redis.TTL).Wrap(geocoder)
		log.Info().Str("address", cfg.Adapter.Redis.Address).Msg("coordinates cache enabled")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, geocoder, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
