package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/jackc/pgerrcode"
)

type travelMapRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewTravelMapRepository constructs a [TravelMapRepository] over the
// "travel_maps" table.
func NewTravelMapRepository(db *DB, logger *logger.Logger) TravelMapRepository {
	logger.Debug().Msg("creating travel map repository")
	return &travelMapRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (r *travelMapRepository) FindByName(ctx context.Context, cityName string) (models.TravelMap, error) {
	return r.findOne(ctx, "*travelMapRepository.FindByName", findTravelMapByName, cityName)
}

func (r *travelMapRepository) FindByID(ctx context.Context, id string) (models.TravelMap, error) {
	return r.findOne(ctx, "*travelMapRepository.FindByID", findTravelMapByID, id)
}

func (r *travelMapRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.TravelMap, error) {
	log := logger.FromContext(ctx)

	travelMap, err := scanTravelMap(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelMap{}, ErrTravelMapNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding travel map")
		return models.TravelMap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return travelMap, nil
}

// InsertIfAbsent relies on the unique index on city_name: when a concurrent
// insert wins, ON CONFLICT DO NOTHING returns no row and the winner is read
// back instead, so both callers observe the same id.
func (r *travelMapRepository) InsertIfAbsent(ctx context.Context, cityName string, location models.Location) (models.TravelMap, bool, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertTravelMapIfAbsent, r.ids.Generate(), cityName, location.Longitude, location.Latitude)
	travelMap, err := scanTravelMap(row)
	if err == nil {
		return travelMap, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*travelMapRepository.InsertIfAbsent").Msg("error inserting travel map")
		return models.TravelMap{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*travelMapRepository.InsertIfAbsent").Str("city", cityName).Msg("lost insert race, reading existing city")
	existing, err := r.FindByName(ctx, cityName)
	if err != nil {
		return models.TravelMap{}, false, err
	}

	return existing, false, nil
}

func (r *travelMapRepository) List(ctx context.Context, nameFilter string) ([]models.TravelMap, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTravelMapsQuery(nameFilter)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.List").Msg("error listing travel maps")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.TravelMap, 0)
	for rows.Next() {
		travelMap, err := scanTravelMap(rows)
		if err != nil {
			log.Err(err).Str("func", "*travelMapRepository.List").Msg("error scanning travel map")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, travelMap)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*travelMapRepository.List").Msg("error iterating travel maps")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *travelMapRepository) FindIDsByName(ctx context.Context, nameFilter string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTravelMapIDsQuery(nameFilter)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.FindIDsByName").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.FindIDsByName").Msg("error selecting travel map ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// Rename returns [ErrCityAlreadyExists] when another row already carries
// cityName and [ErrTravelMapNotFound] when id is unknown.
func (r *travelMapRepository) Rename(ctx context.Context, id, cityName string) (models.TravelMap, error) {
	log := logger.FromContext(ctx)

	travelMap, err := scanTravelMap(r.db.QueryRowContext(ctx, renameTravelMap, id, cityName))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelMap{}, ErrTravelMapNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.Rename").Msg("error renaming travel map")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.TravelMap{}, ErrCityAlreadyExists
		default:
			return models.TravelMap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return travelMap, nil
}

// Delete refuses to remove a city that travel records still point at.
func (r *travelMapRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTravelMap, id)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.Delete").Msg("error deleting travel map")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
			return ErrTravelMapInUse
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return expectAffected(result, ErrTravelMapNotFound)
}

func (r *travelMapRepository) Footprints(ctx context.Context, ownerID string) ([]models.Footprint, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectFootprints, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.Footprints").Msg("error selecting footprints")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	footprints := make([]models.Footprint, 0)
	for rows.Next() {
		var fp models.Footprint
		if err = rows.Scan(&fp.CityName, &fp.Location.Longitude, &fp.Location.Latitude); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		footprints = append(footprints, fp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return footprints, nil
}

func (r *travelMapRepository) CitiesByOwner(ctx context.Context, ownerID string) ([]models.CityRef, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectCitiesByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*travelMapRepository.CitiesByOwner").Msg("error selecting cities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cities := make([]models.CityRef, 0)
	for rows.Next() {
		var city models.CityRef
		if err = rows.Scan(&city.ID, &city.CityName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cities = append(cities, city)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cities, nil
}

func scanTravelMap(row rowScanner) (models.TravelMap, error) {
	var m models.TravelMap
	err := row.Scan(&m.ID, &m.CityName, &m.Location.Longitude, &m.Location.Latitude, &m.CreatedAt)
	return m, err
}

// expectAffected maps a statement that touched no row to notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
