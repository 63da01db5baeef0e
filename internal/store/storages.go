package store

import "github.com/MKhiriev/go-travel-journal/internal/logger"

// Storages groups every repository backed by one database pool.
type Storages struct {
	DB                     *DB
	UserRepository         UserRepository
	TravelMapRepository    TravelMapRepository
	TravelRecordRepository TravelRecordRepository
	TravelAlbumRepository  TravelAlbumRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                     db,
		UserRepository:         NewUserRepository(db, log),
		TravelMapRepository:    NewTravelMapRepository(db, log),
		TravelRecordRepository: NewTravelRecordRepository(db, log),
		TravelAlbumRepository:  NewTravelAlbumRepository(db, log),
	}
}
