package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// recordSortColumns is the allow-list of client sort keys for record listings.
var recordSortColumns = map[string]string{
	"startTime": "start_time",
	"endTime":   "end_time",
	"createdAt": "created_at",
}

// travelRecordService orchestrates journal entries: it resolves cities
// through the TravelMapService, enforces ownership and time ranges, and
// writes the photo albums that accompany a new record.
type travelRecordService struct {
	travelRecordRepository store.TravelRecordRepository
	travelAlbumRepository  store.TravelAlbumRepository
	travelMapService       TravelMapService

	logger *logger.Logger
}

func NewTravelRecordService(
	travelRecordRepository store.TravelRecordRepository,
	travelAlbumRepository store.TravelAlbumRepository,
	travelMapService TravelMapService,
	logger *logger.Logger,
) TravelRecordService {
	return &travelRecordService{
		travelRecordRepository: travelRecordRepository,
		travelAlbumRepository:  travelAlbumRepository,
		travelMapService:       travelMapService,
		logger:                 logger,
	}
}

// Create stores the record and then one album entry per photo URL.
//
// The album entries are written one by one after the record is saved. A
// failed entry is logged and counted in AlbumsFailed; it never undoes the
// record, so a caller may observe a record with only part of its photos.
func (s *travelRecordService) Create(ctx context.Context, ownerID string, req models.CreateRecordRequest) (models.CreatedRecord, error) {
	log := logger.FromContext(ctx)

	start, err := parseRecordTime(req.StartTime, false)
	if err != nil {
		return models.CreatedRecord{}, err
	}
	end, err := parseRecordTime(req.EndTime, true)
	if err != nil {
		return models.CreatedRecord{}, err
	}
	if start.After(end) {
		return models.CreatedRecord{}, ErrInvalidTimeRange
	}

	travelMap, err := s.travelMapService.FindOrCreate(ctx, req.CityName)
	if err != nil {
		return models.CreatedRecord{}, err
	}

	isShared := true
	if req.IsShared != nil {
		isShared = *req.IsShared
	}

	record, err := s.travelRecordRepository.Create(ctx, models.TravelRecord{
		Title:       strings.TrimSpace(req.Title),
		TravelMapID: travelMap.ID,
		StartTime:   start,
		EndTime:     end,
		Description: req.Description,
		CityImage:   strings.TrimSpace(req.CityImage),
		Article:     req.Article,
		IsShared:    isShared,
		CreatedBy:   ownerID,
	})
	if err != nil {
		return models.CreatedRecord{}, fmt.Errorf("travel record creation failed: %w", err)
	}

	albumTitle := record.Title
	if albumTitle == "" {
		albumTitle = tripTitle(travelMap.CityName)
	}

	var created, failed int
	for _, photo := range req.Photos {
		photo = strings.TrimSpace(photo)
		if photo == "" {
			failed++
			continue
		}

		_, err = s.travelAlbumRepository.Create(ctx, models.TravelAlbum{
			ImageURL:       photo,
			CityName:       travelMap.CityName,
			Title:          albumTitle,
			TravelRecordID: &record.ID,
			CreatedBy:      ownerID,
		})
		if err != nil {
			log.Err(err).Str("func", "*travelRecordService.Create").Str("record", record.ID).Msg("album entry not created")
			failed++
			continue
		}
		created++
	}
	if failed > 0 {
		log.Warn().Str("record", record.ID).Int("created", created).Int("failed", failed).Msg("photo batch partially failed")
	}

	view, err := s.travelRecordRepository.FindByID(ctx, record.ID)
	if err != nil {
		return models.CreatedRecord{}, err
	}

	return models.CreatedRecord{TravelRecordView: view, AlbumsCreated: created, AlbumsFailed: failed}, nil
}

// Update applies the present fields of patch. A new city name goes through
// the same geocoded find-or-create as Create. The time range is checked
// against the merged values, so a patch can never leave start after end.
func (s *travelRecordService) Update(ctx context.Context, ownerID, id string, patch models.RecordPatch) (models.TravelRecordView, error) {
	current, err := s.ownedRecord(ctx, ownerID, id)
	if err != nil {
		return models.TravelRecordView{}, err
	}

	update := models.RecordUpdate{
		Title:    trimmed(patch.Title),
		Article:  patch.Article,
		IsShared: patch.IsShared,
	}

	var missing []string
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			missing = append(missing, validators.FieldDescription)
		}
		update.Description = patch.Description
	}
	if patch.CityImage != nil {
		if strings.TrimSpace(*patch.CityImage) == "" {
			missing = append(missing, validators.FieldCityImage)
		}
		update.CityImage = trimmed(patch.CityImage)
	}
	if len(missing) > 0 {
		return models.TravelRecordView{}, &MissingFieldsError{Fields: missing}
	}

	start, end := current.StartTime, current.EndTime
	if patch.StartTime != nil {
		if start, err = parseRecordTime(*patch.StartTime, false); err != nil {
			return models.TravelRecordView{}, err
		}
		update.StartTime = &start
	}
	if patch.EndTime != nil {
		if end, err = parseRecordTime(*patch.EndTime, true); err != nil {
			return models.TravelRecordView{}, err
		}
		update.EndTime = &end
	}
	if start.After(end) {
		return models.TravelRecordView{}, ErrInvalidTimeRange
	}

	if patch.CityName != nil && strings.TrimSpace(*patch.CityName) != "" {
		travelMap, err := s.travelMapService.FindOrCreate(ctx, *patch.CityName)
		if err != nil {
			return models.TravelRecordView{}, err
		}
		if travelMap.ID != current.TravelMapID {
			update.TravelMapID = &travelMap.ID
		}
	}

	if update.IsEmpty() {
		return current, nil
	}

	if _, err = s.travelRecordRepository.Update(ctx, id, update); err != nil {
		return models.TravelRecordView{}, fmt.Errorf("travel record update failed: %w", err)
	}

	return s.travelRecordRepository.FindByID(ctx, id)
}

// Delete removes the record. Its album entries stay and lose the link.
func (s *travelRecordService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.ownedRecord(ctx, ownerID, id); err != nil {
		return err
	}

	return s.travelRecordRepository.Delete(ctx, id)
}

// ownedRecord loads the record and checks that ownerID created it.
func (s *travelRecordService) ownedRecord(ctx context.Context, ownerID, id string) (models.TravelRecordView, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.TravelRecordView{}, ErrInvalidID
	}

	record, err := s.travelRecordRepository.FindByID(ctx, id)
	if err != nil {
		return models.TravelRecordView{}, err
	}

	if err = AssertOwner(record.CreatedBy, ownerID); err != nil {
		log.Warn().Str("record", id).Str("user", ownerID).Msg("record mutation by non-owner rejected")
		return models.TravelRecordView{}, err
	}

	return record, nil
}

// ListPublic lists shared records. Unknown sort keys fall back to newest
// first; for known keys the order is descending unless sortOrder names
// another direction.
func (s *travelRecordService) ListPublic(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	filter := models.RecordFilter{
		Title:      strings.TrimSpace(query.Title),
		SharedOnly: true,
		SortColumn: "created_at",
		Descending: true,
		Page:       query.Page,
	}
	if column, ok := recordSortColumns[query.SortBy]; ok {
		filter.SortColumn = column
		filter.Descending = query.SortOrder == "" || strings.EqualFold(query.SortOrder, "desc")
	}

	return s.list(ctx, query.CityName, filter)
}

// ListMine lists the owner's records, newest first.
func (s *travelRecordService) ListMine(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	filter := models.RecordFilter{
		Title:      strings.TrimSpace(query.Title),
		OwnerID:    query.OwnerID,
		SortColumn: "created_at",
		Descending: true,
		Page:       query.Page,
	}

	return s.list(ctx, query.CityName, filter)
}

func (s *travelRecordService) list(ctx context.Context, cityName string, filter models.RecordFilter) (models.PageResult[models.TravelRecordView], error) {
	if cityName = strings.TrimSpace(cityName); cityName != "" {
		ids, err := s.travelMapService.MatchingIDs(ctx, cityName)
		if err != nil {
			return models.PageResult[models.TravelRecordView]{}, err
		}
		if len(ids) == 0 {
			return models.NewPageResult[models.TravelRecordView](nil, 0, filter.Page), nil
		}
		filter.FilterByMap = true
		filter.TravelMapIDs = ids
	}

	records, total, err := s.travelRecordRepository.List(ctx, filter)
	if err != nil {
		return models.PageResult[models.TravelRecordView]{}, err
	}

	return models.NewPageResult(records, total, filter.Page), nil
}

func (s *travelRecordService) GetDetail(ctx context.Context, id string) (models.TravelRecordView, error) {
	if !utils.IsValidID(id) {
		return models.TravelRecordView{}, ErrInvalidID
	}

	return s.travelRecordRepository.FindByID(ctx, id)
}

// Timeline returns the owner's trips, latest start first.
func (s *travelRecordService) Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error) {
	entries, err := s.travelRecordRepository.Timeline(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if strings.TrimSpace(entries[i].Title) == "" {
			entries[i].Title = tripTitle(entries[i].CityName)
		}
		entries[i].DurationDays = durationDays(entries[i].StartTime, entries[i].EndTime)
	}

	return entries, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
