package service

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// TravelRecordValidationService rejects record creation requests with
// missing required fields before they reach the wrapped service.
type TravelRecordValidationService struct {
	inner     TravelRecordService
	validator validators.Validator
}

func NewTravelRecordValidationService() TravelRecordServiceWrapper {
	return &TravelRecordValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TravelRecordValidationService) Wrap(inner TravelRecordService) TravelRecordService {
	v.inner = inner
	return v
}

// Create checks the time range first whenever both times are readable, so
// an inverted range is reported even when other fields are missing.
func (v *TravelRecordValidationService) Create(ctx context.Context, ownerID string, req models.CreateRecordRequest) (models.CreatedRecord, error) {
	start, startErr := parseRecordTime(req.StartTime, false)
	end, endErr := parseRecordTime(req.EndTime, true)
	if startErr == nil && endErr == nil && start.After(end) {
		return models.CreatedRecord{}, ErrInvalidTimeRange
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CreatedRecord{}, err
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *TravelRecordValidationService) Update(ctx context.Context, ownerID, id string, patch models.RecordPatch) (models.TravelRecordView, error) {
	return v.inner.Update(ctx, ownerID, id, patch)
}

func (v *TravelRecordValidationService) Delete(ctx context.Context, ownerID, id string) error {
	return v.inner.Delete(ctx, ownerID, id)
}

func (v *TravelRecordValidationService) ListPublic(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	return v.inner.ListPublic(ctx, query)
}

func (v *TravelRecordValidationService) ListMine(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	return v.inner.ListMine(ctx, query)
}

func (v *TravelRecordValidationService) GetDetail(ctx context.Context, id string) (models.TravelRecordView, error) {
	return v.inner.GetDetail(ctx, id)
}

func (v *TravelRecordValidationService) Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error) {
	return v.inner.Timeline(ctx, ownerID)
}

// TravelAlbumValidationService rejects album creation requests with
// missing required fields.
type TravelAlbumValidationService struct {
	inner     TravelAlbumService
	validator validators.Validator
}

func NewTravelAlbumValidationService() TravelAlbumServiceWrapper {
	return &TravelAlbumValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TravelAlbumValidationService) Wrap(inner TravelAlbumService) TravelAlbumService {
	v.inner = inner
	return v
}

func (v *TravelAlbumValidationService) Create(ctx context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TravelAlbum{}, err
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *TravelAlbumValidationService) Delete(ctx context.Context, ownerID, id string) error {
	return v.inner.Delete(ctx, ownerID, id)
}

func (v *TravelAlbumValidationService) ListMine(ctx context.Context, query models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error) {
	return v.inner.ListMine(ctx, query)
}
