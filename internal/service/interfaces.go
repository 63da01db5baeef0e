package service

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/models"
)

// IdentityService registers and authenticates users and manages their
// profiles and session tokens.
type IdentityService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error)
	UpdateNickname(ctx context.Context, userID, nickname string) (models.User, error)
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TravelMapService is the city directory.
type TravelMapService interface {
	// FindOrCreate returns the city named cityName, geocoding and inserting
	// it on first use. Concurrent callers observe the same row.
	FindOrCreate(ctx context.Context, cityName string) (models.TravelMap, error)
	// Create returns the existing row together with store.ErrCityAlreadyExists
	// when the city is already known.
	Create(ctx context.Context, cityName string) (models.TravelMap, error)
	List(ctx context.Context, nameFilter string) ([]models.TravelMap, error)
	MatchingIDs(ctx context.Context, nameFilter string) ([]string, error)
	Get(ctx context.Context, id string) (models.TravelMap, error)
	Rename(ctx context.Context, id, cityName string) (models.TravelMap, error)
	Delete(ctx context.Context, id string) error
	Footprints(ctx context.Context, ownerID string) ([]models.Footprint, error)
	MyCities(ctx context.Context, ownerID string) ([]models.CityRef, error)
}

// TravelRecordService manages journal entries.
type TravelRecordService interface {
	Create(ctx context.Context, ownerID string, req models.CreateRecordRequest) (models.CreatedRecord, error)
	Update(ctx context.Context, ownerID, id string, patch models.RecordPatch) (models.TravelRecordView, error)
	Delete(ctx context.Context, ownerID, id string) error
	ListPublic(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error)
	ListMine(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error)
	GetDetail(ctx context.Context, id string) (models.TravelRecordView, error)
	Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error)
}

// TravelAlbumService manages photo entries scoped to their owner.
type TravelAlbumService interface {
	Create(ctx context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error)
	Delete(ctx context.Context, ownerID, id string) error
	ListMine(ctx context.Context, query models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health reports whether the database answers.
	Health(ctx context.Context) error
}

// TravelRecordServiceWrapper defines middleware composition for
// TravelRecordService. Implementations wrap an existing TravelRecordService
// to add behavior such as validating.
type TravelRecordServiceWrapper interface {
	Wrap(TravelRecordService) TravelRecordService
}

// TravelAlbumServiceWrapper defines middleware composition for
// TravelAlbumService.
type TravelAlbumServiceWrapper interface {
	Wrap(TravelAlbumService) TravelAlbumService
}

// Pinger is satisfied by the database handle.
type Pinger interface {
	Ping(ctx context.Context) error
}
