package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapID = "0190c7a8-0000-7000-8000-0000000000aa"

func newTestTravelMapRepo(t *testing.T) (*travelMapRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &travelMapRepository{db: db, logger: logger.Nop(), ids: utils.NewUUIDGenerator()}, mock
}

func travelMapRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "city_name", "longitude", "latitude", "created_at"})
}

var wuhan = models.Location{Longitude: 114.305393, Latitude: 30.593099}

func TestTravelMap_FindByName(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM travel_maps").
		WithArgs("Wuhan").
		WillReturnRows(travelMapRows().AddRow(testMapID, "Wuhan", wuhan.Longitude, wuhan.Latitude, now))

	found, err := repo.FindByName(context.Background(), "Wuhan")

	require.NoError(t, err)
	assert.Equal(t, testMapID, found.ID)
	assert.Equal(t, wuhan, found.Location)
}

func TestTravelMap_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("FROM travel_maps").WillReturnRows(travelMapRows())

	_, err := repo.FindByID(context.Background(), testMapID)
	assert.ErrorIs(t, err, ErrTravelMapNotFound)
}

// ── InsertIfAbsent ────────────────────────────────────────────────────────────

func TestTravelMap_InsertIfAbsent_Inserted(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("INSERT INTO travel_maps (.+) ON CONFLICT \\(city_name\\) DO NOTHING").
		WithArgs(sqlmock.AnyArg(), "Wuhan", wuhan.Longitude, wuhan.Latitude).
		WillReturnRows(travelMapRows().AddRow(testMapID, "Wuhan", wuhan.Longitude, wuhan.Latitude, time.Now()))

	created, inserted, err := repo.InsertIfAbsent(context.Background(), "Wuhan", wuhan)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, testMapID, created.ID)
}

// TestTravelMap_InsertIfAbsent_LostRace verifies that the loser of a
// concurrent insert returns the winner's row.
func TestTravelMap_InsertIfAbsent_LostRace(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("INSERT INTO travel_maps").
		WillReturnRows(travelMapRows())
	mock.ExpectQuery("SELECT (.+) FROM travel_maps").
		WithArgs("Wuhan").
		WillReturnRows(travelMapRows().AddRow(testMapID, "Wuhan", wuhan.Longitude, wuhan.Latitude, time.Now()))

	existing, inserted, err := repo.InsertIfAbsent(context.Background(), "Wuhan", models.Location{Longitude: 1, Latitude: 2})

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, testMapID, existing.ID)
	assert.Equal(t, wuhan, existing.Location)
}

func TestTravelMap_InsertIfAbsent_Error(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("INSERT INTO travel_maps").WillReturnError(errors.New("boom"))

	_, _, err := repo.InsertIfAbsent(context.Background(), "Wuhan", wuhan)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestTravelMap_List_EscapesWildcards(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM travel_maps WHERE city_name ILIKE \\$1 ORDER BY created_at DESC").
		WithArgs(`%100\%%`).
		WillReturnRows(travelMapRows().AddRow(testMapID, "100% City", 1.0, 2.0, time.Now()))

	maps, err := repo.List(context.Background(), "100%")

	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "100% City", maps[0].CityName)
}

func TestTravelMap_List_AllWhenNoFilter(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM travel_maps ORDER BY").
		WillReturnRows(travelMapRows())

	maps, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, maps)
	assert.Empty(t, maps)
}

func TestTravelMap_FindIDsByName(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT id FROM travel_maps WHERE city_name ILIKE").
		WithArgs("%wu%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	ids, err := repo.FindIDsByName(context.Background(), "wu")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

// ── Rename / Delete ───────────────────────────────────────────────────────────

func TestTravelMap_Rename(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unknown id", dbErr: sql.ErrNoRows, wantErr: ErrTravelMapNotFound},
		{name: "name taken", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrCityAlreadyExists},
		{name: "db failure", dbErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTravelMapRepo(t)
			mock.ExpectQuery("UPDATE travel_maps").
				WithArgs(testMapID, "Hankou").
				WillReturnError(tt.dbErr)

			_, err := repo.Rename(context.Background(), testMapID, "Hankou")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTravelMap_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM travel_maps").WithArgs(testMapID).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM travel_maps").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrTravelMapNotFound,
		},
		{
			name: "still referenced",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM travel_maps").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrTravelMapInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTravelMapRepo(t)
			tt.setup(mock)

			err := repo.Delete(context.Background(), testMapID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Footprints / CitiesByOwner ────────────────────────────────────────────────

func TestTravelMap_Footprints(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT DISTINCT m.city_name").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"city_name", "longitude", "latitude"}).
			AddRow("Beijing", 116.4, 39.9).
			AddRow("Wuhan", wuhan.Longitude, wuhan.Latitude))

	footprints, err := repo.Footprints(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, footprints, 2)
	assert.Equal(t, "Beijing", footprints[0].CityName)
	assert.Equal(t, wuhan, footprints[1].Location)
}

func TestTravelMap_CitiesByOwner(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT DISTINCT m.id, m.city_name").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_name"}).AddRow(testMapID, "Wuhan"))

	cities, err := repo.CitiesByOwner(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, []models.CityRef{{ID: testMapID, CityName: "Wuhan"}}, cities)
}

func TestTravelMap_CitiesByOwner_Error(t *testing.T) {
	repo, mock := newTestTravelMapRepo(t)

	mock.ExpectQuery("SELECT DISTINCT").WillReturnError(errors.New("boom"))

	_, err := repo.CitiesByOwner(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
