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

// travelRecordRepository is the PostgreSQL-backed implementation of
// [TravelRecordRepository]. Reads return records joined with their city
// and a summary of their owner.
type travelRecordRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewTravelRecordRepository(db *DB, logger *logger.Logger) TravelRecordRepository {
	logger.Debug().Msg("creating travel record repository")
	return &travelRecordRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// Create inserts the record with a fresh id.
//
// Error handling:
//   - foreign_key_violation (unknown city or owner) → [ErrUnknownReference].
//   - check_violation (start after end) and anything else → wrapped
//     [ErrExecutingQuery].
func (r *travelRecordRepository) Create(ctx context.Context, record models.TravelRecord) (models.TravelRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTravelRecord,
		r.ids.Generate(),
		record.Title,
		record.TravelMapID,
		record.StartTime,
		record.EndTime,
		record.Description,
		record.CityImage,
		record.Article,
		record.IsShared,
		record.CreatedBy,
	)

	created, err := scanTravelRecord(row)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.Create").Msg("error creating travel record")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.TravelRecord{}, ErrUnknownReference
		default:
			return models.TravelRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *travelRecordRepository) FindByID(ctx context.Context, id string) (models.TravelRecordView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRecordViewQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.FindByID").Msg("error building query")
		return models.TravelRecordView{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	view, err := scanRecordView(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelRecordView{}, ErrTravelRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.FindByID").Msg("error finding travel record")
		return models.TravelRecordView{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return view, nil
}

// Update applies the non-nil fields of update and returns the stored row.
func (r *travelRecordRepository) Update(ctx context.Context, id string, update models.RecordUpdate) (models.TravelRecord, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		view, err := r.FindByID(ctx, id)
		return view.TravelRecord, err
	}

	query, args, err := buildUpdateRecordQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.Update").Msg("error building update query")
		return models.TravelRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTravelRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelRecord{}, ErrTravelRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.Update").Msg("error updating travel record")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.TravelRecord{}, ErrUnknownReference
		default:
			return models.TravelRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return updated, nil
}

// Delete removes the record. Linked album entries survive with their
// travel_record_id set to NULL.
func (r *travelRecordRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTravelRecord, id)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.Delete").Msg("error deleting travel record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrTravelRecordNotFound)
}

// List returns one page of matching records together with the total
// number of matches.
func (r *travelRecordRepository) List(ctx context.Context, filter models.RecordFilter) ([]models.TravelRecordView, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountRecordsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.List").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.List").Msg("error counting travel records")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if total == 0 {
		return []models.TravelRecordView{}, 0, nil
	}

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.List").Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.List").Msg("error listing travel records")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	views := make([]models.TravelRecordView, 0, filter.Page.Size)
	for rows.Next() {
		view, err := scanRecordView(rows)
		if err != nil {
			log.Err(err).Str("func", "*travelRecordRepository.List").Msg("error scanning travel record")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return views, total, nil
}

// Timeline returns the owner's records, latest start first. DurationDays is
// left for the caller to derive.
func (r *travelRecordRepository) Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectTimeline, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*travelRecordRepository.Timeline").Msg("error selecting timeline")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimelineEntry, 0)
	for rows.Next() {
		var e models.TimelineEntry
		if err = rows.Scan(&e.ID, &e.CityID, &e.CityName, &e.CityImage, &e.Description, &e.Title, &e.StartTime, &e.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func scanTravelRecord(row rowScanner) (models.TravelRecord, error) {
	var rec models.TravelRecord
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.TravelMapID,
		&rec.StartTime,
		&rec.EndTime,
		&rec.Description,
		&rec.CityImage,
		&rec.Article,
		&rec.IsShared,
		&rec.CreatedAt,
		&rec.CreatedBy,
	)
	return rec, err
}

func scanRecordView(row rowScanner) (models.TravelRecordView, error) {
	var v models.TravelRecordView
	err := row.Scan(
		&v.ID,
		&v.Title,
		&v.TravelMapID,
		&v.StartTime,
		&v.EndTime,
		&v.Description,
		&v.CityImage,
		&v.Article,
		&v.IsShared,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.TravelMap.ID,
		&v.TravelMap.CityName,
		&v.TravelMap.Location.Longitude,
		&v.TravelMap.Location.Latitude,
		&v.TravelMap.CreatedAt,
		&v.Owner.ID,
		&v.Owner.Username,
		&v.Owner.Avatar,
	)
	return v, err
}
