package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// travelMapService keeps one row per city name. New cities are geocoded
// before they are stored; the unique index on city_name plus
// InsertIfAbsent make find-or-create safe under concurrent callers.
type travelMapService struct {
	travelMapRepository store.TravelMapRepository
	geocoder            adapter.Geocoder

	logger *logger.Logger
}

func NewTravelMapService(travelMapRepository store.TravelMapRepository, geocoder adapter.Geocoder, logger *logger.Logger) TravelMapService {
	return &travelMapService{
		travelMapRepository: travelMapRepository,
		geocoder:            geocoder,
		logger:              logger,
	}
}

func (s *travelMapService) FindOrCreate(ctx context.Context, cityName string) (models.TravelMap, error) {
	travelMap, _, err := s.findOrCreate(ctx, cityName)
	return travelMap, err
}

// findOrCreate additionally reports whether this call inserted the row.
func (s *travelMapService) findOrCreate(ctx context.Context, cityName string) (models.TravelMap, bool, error) {
	log := logger.FromContext(ctx)

	cityName = strings.TrimSpace(cityName)
	if cityName == "" {
		return models.TravelMap{}, false, &MissingFieldsError{Fields: []string{validators.FieldCityName}}
	}

	existing, err := s.travelMapRepository.FindByName(ctx, cityName)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrTravelMapNotFound) {
		return models.TravelMap{}, false, err
	}

	location, err := s.geocoder.ResolveCoordinates(ctx, cityName)
	if err != nil {
		log.Err(err).Str("func", "*travelMapService.findOrCreate").Str("city", cityName).Msg("geocoding failed")
		return models.TravelMap{}, false, fmt.Errorf("%w: %w", ErrGeoFailed, err)
	}

	travelMap, inserted, err := s.travelMapRepository.InsertIfAbsent(ctx, cityName, location)
	if err != nil {
		return models.TravelMap{}, false, err
	}
	if inserted {
		log.Info().Str("city", cityName).Str("id", travelMap.ID).Msg("new city added to travel map")
	}

	return travelMap, inserted, nil
}

// Create answers an already known city with the existing row and
// store.ErrCityAlreadyExists, so callers may treat it as idempotent.
func (s *travelMapService) Create(ctx context.Context, cityName string) (models.TravelMap, error) {
	travelMap, inserted, err := s.findOrCreate(ctx, cityName)
	if err != nil {
		return models.TravelMap{}, err
	}
	if !inserted {
		return travelMap, store.ErrCityAlreadyExists
	}

	return travelMap, nil
}

func (s *travelMapService) List(ctx context.Context, nameFilter string) ([]models.TravelMap, error) {
	return s.travelMapRepository.List(ctx, strings.TrimSpace(nameFilter))
}

// MatchingIDs returns the ids of all cities whose name contains nameFilter.
func (s *travelMapService) MatchingIDs(ctx context.Context, nameFilter string) ([]string, error) {
	return s.travelMapRepository.FindIDsByName(ctx, strings.TrimSpace(nameFilter))
}

func (s *travelMapService) Get(ctx context.Context, id string) (models.TravelMap, error) {
	if !utils.IsValidID(id) {
		return models.TravelMap{}, ErrInvalidID
	}

	return s.travelMapRepository.FindByID(ctx, id)
}

// Rename keeps the current row when cityName is blank or unchanged.
func (s *travelMapService) Rename(ctx context.Context, id, cityName string) (models.TravelMap, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.TravelMap{}, err
	}

	cityName = strings.TrimSpace(cityName)
	if cityName == "" || cityName == current.CityName {
		return current, nil
	}

	return s.travelMapRepository.Rename(ctx, id, cityName)
}

// Delete is rejected with store.ErrTravelMapInUse while records still
// reference the city.
func (s *travelMapService) Delete(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return ErrInvalidID
	}

	return s.travelMapRepository.Delete(ctx, id)
}

func (s *travelMapService) Footprints(ctx context.Context, ownerID string) ([]models.Footprint, error) {
	return s.travelMapRepository.Footprints(ctx, ownerID)
}

func (s *travelMapService) MyCities(ctx context.Context, ownerID string) ([]models.CityRef, error) {
	return s.travelMapRepository.CitiesByOwner(ctx, ownerID)
}
