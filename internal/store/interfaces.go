package store

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// ExistsByIdentity reports whether any user already owns the username,
	// the phone or the email.
	ExistsByIdentity(ctx context.Context, username, phone, email string) (bool, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.ProfilePatch) (models.User, error)
}

// TravelMapRepository persists the city directory.
type TravelMapRepository interface {
	FindByName(ctx context.Context, cityName string) (models.TravelMap, error)
	FindByID(ctx context.Context, id string) (models.TravelMap, error)
	// InsertIfAbsent inserts the city unless a row with the same name exists.
	// The returned flag is false when another row won and was returned instead.
	InsertIfAbsent(ctx context.Context, cityName string, location models.Location) (models.TravelMap, bool, error)
	List(ctx context.Context, nameFilter string) ([]models.TravelMap, error)
	FindIDsByName(ctx context.Context, nameFilter string) ([]string, error)
	Rename(ctx context.Context, id, cityName string) (models.TravelMap, error)
	Delete(ctx context.Context, id string) error
	Footprints(ctx context.Context, ownerID string) ([]models.Footprint, error)
	CitiesByOwner(ctx context.Context, ownerID string) ([]models.CityRef, error)
}

// TravelRecordRepository persists journal entries.
type TravelRecordRepository interface {
	Create(ctx context.Context, record models.TravelRecord) (models.TravelRecord, error)
	FindByID(ctx context.Context, id string) (models.TravelRecordView, error)
	Update(ctx context.Context, id string, update models.RecordUpdate) (models.TravelRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.RecordFilter) ([]models.TravelRecordView, int, error)
	Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error)
}

// TravelAlbumRepository persists photo entries.
type TravelAlbumRepository interface {
	Create(ctx context.Context, album models.TravelAlbum) (models.TravelAlbum, error)
	FindByID(ctx context.Context, id string) (models.TravelAlbum, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, filter models.AlbumFilter) ([]models.AlbumPhoto, int, error)
}
