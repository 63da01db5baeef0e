package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/migrations"
)

// DB is the shared connection pool used by every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping checks that the database is reachable. It backs the health endpoint.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
