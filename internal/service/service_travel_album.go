package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// albumSortColumns is the allow-list of client sort keys for album listings.
var albumSortColumns = map[string]string{
	"createdAt": "created_at",
	"title":     "title",
	"cityName":  "city_name",
}

type travelAlbumService struct {
	travelAlbumRepository store.TravelAlbumRepository

	logger *logger.Logger
}

func NewTravelAlbumService(travelAlbumRepository store.TravelAlbumRepository, logger *logger.Logger) TravelAlbumService {
	return &travelAlbumService{
		travelAlbumRepository: travelAlbumRepository,
		logger:                logger,
	}
}

func (s *travelAlbumService) Create(ctx context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error) {
	album, err := s.travelAlbumRepository.Create(ctx, models.TravelAlbum{
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CityName:  strings.TrimSpace(req.CityName),
		Title:     strings.TrimSpace(req.Title),
		CreatedBy: ownerID,
	})
	if err != nil {
		return models.TravelAlbum{}, fmt.Errorf("album entry creation failed: %w", err)
	}

	return album, nil
}

func (s *travelAlbumService) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrInvalidID
	}

	album, err := s.travelAlbumRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err = AssertOwner(album.CreatedBy, ownerID); err != nil {
		log.Warn().Str("album", id).Str("user", ownerID).Msg("album deletion by non-owner rejected")
		return err
	}

	return s.travelAlbumRepository.Delete(ctx, id)
}

// ListMine lists the owner's photos. Unknown sort keys fall back to
// createdAt; the order is descending unless sortOrder names another
// direction.
func (s *travelAlbumService) ListMine(ctx context.Context, query models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error) {
	filter := models.AlbumFilter{
		OwnerID:    query.OwnerID,
		SortColumn: "created_at",
		Descending: query.SortOrder == "" || strings.EqualFold(query.SortOrder, "desc"),
		Page:       query.Page,
	}
	if column, ok := albumSortColumns[query.SortBy]; ok {
		filter.SortColumn = column
	}

	photos, total, err := s.travelAlbumRepository.ListByOwner(ctx, filter)
	if err != nil {
		return models.PageResult[models.AlbumPhoto]{}, err
	}

	return models.NewPageResult(photos, total, filter.Page), nil
}
