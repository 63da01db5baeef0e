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

type travelAlbumRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewTravelAlbumRepository(db *DB, logger *logger.Logger) TravelAlbumRepository {
	logger.Debug().Msg("creating travel album repository")
	return &travelAlbumRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (r *travelAlbumRepository) Create(ctx context.Context, album models.TravelAlbum) (models.TravelAlbum, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTravelAlbum,
		r.ids.Generate(),
		album.ImageURL,
		album.CityName,
		album.Title,
		album.TravelRecordID,
		album.CreatedBy,
	)

	created, err := scanTravelAlbum(row)
	if err != nil {
		log.Err(err).Str("func", "*travelAlbumRepository.Create").Msg("error creating album entry")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.TravelAlbum{}, ErrUnknownReference
		default:
			return models.TravelAlbum{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *travelAlbumRepository) FindByID(ctx context.Context, id string) (models.TravelAlbum, error) {
	log := logger.FromContext(ctx)

	album, err := scanTravelAlbum(r.db.QueryRowContext(ctx, findTravelAlbumByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelAlbum{}, ErrTravelAlbumNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*travelAlbumRepository.FindByID").Msg("error finding album entry")
		return models.TravelAlbum{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return album, nil
}

func (r *travelAlbumRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTravelAlbum, id)
	if err != nil {
		log.Err(err).Str("func", "*travelAlbumRepository.Delete").Msg("error deleting album entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrTravelAlbumNotFound)
}

// ListByOwner returns one page of the owner's photos and their total count.
func (r *travelAlbumRepository) ListByOwner(ctx context.Context, filter models.AlbumFilter) ([]models.AlbumPhoto, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountAlbumsQuery(filter.OwnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*travelAlbumRepository.ListByOwner").Msg("error counting album entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if total == 0 {
		return []models.AlbumPhoto{}, 0, nil
	}

	query, args, err := buildListAlbumsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*travelAlbumRepository.ListByOwner").Msg("error listing album entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.AlbumPhoto, 0, filter.Page.Size)
	for rows.Next() {
		var p models.AlbumPhoto
		if err = rows.Scan(&p.ID, &p.ImageURL, &p.CityName, &p.Title, &p.TravelRecordID, &p.CreatedBy, &p.CreatedAt, &p.TravelRecordTitle); err != nil {
			log.Err(err).Str("func", "*travelAlbumRepository.ListByOwner").Msg("error scanning album entry")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		photos = append(photos, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, total, nil
}

func scanTravelAlbum(row rowScanner) (models.TravelAlbum, error) {
	var a models.TravelAlbum
	err := row.Scan(&a.ID, &a.ImageURL, &a.CityName, &a.Title, &a.TravelRecordID, &a.CreatedBy, &a.CreatedAt)
	return a, err
}
