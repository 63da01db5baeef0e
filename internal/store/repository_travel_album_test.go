package store

import (
	"context"
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

const testAlbumID = "0190c7a8-0000-7000-8000-0000000000cc"

func newTestTravelAlbumRepo(t *testing.T) (*travelAlbumRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &travelAlbumRepository{db: db, logger: logger.Nop(), ids: utils.NewUUIDGenerator()}, mock
}

func travelAlbumRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "image_url", "city_name", "title", "travel_record_id", "created_by", "created_at"})
}

func TestTravelAlbum_Create_LinkedToRecord(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)
	recordID := testRecordID

	mock.ExpectQuery("INSERT INTO travel_albums").
		WithArgs(sqlmock.AnyArg(), "https://img/1.jpg", "Wuhan", "Spring", recordID, testUserID).
		WillReturnRows(travelAlbumRows().AddRow(testAlbumID, "https://img/1.jpg", "Wuhan", "Spring", recordID, testUserID, time.Now()))

	created, err := repo.Create(context.Background(), models.TravelAlbum{
		ImageURL:       "https://img/1.jpg",
		CityName:       "Wuhan",
		Title:          "Spring",
		TravelRecordID: &recordID,
		CreatedBy:      testUserID,
	})

	require.NoError(t, err)
	assert.Equal(t, testAlbumID, created.ID)
	require.NotNil(t, created.TravelRecordID)
	assert.Equal(t, testRecordID, *created.TravelRecordID)
}

func TestTravelAlbum_Create_Unlinked(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)

	mock.ExpectQuery("INSERT INTO travel_albums").
		WillReturnRows(travelAlbumRows().AddRow(testAlbumID, "u", "Wuhan", "t", nil, testUserID, time.Now()))

	created, err := repo.Create(context.Background(), models.TravelAlbum{ImageURL: "u", CityName: "Wuhan", Title: "t", CreatedBy: testUserID})

	require.NoError(t, err)
	assert.Nil(t, created.TravelRecordID)
}

func TestTravelAlbum_Create_UnknownOwner(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)

	mock.ExpectQuery("INSERT INTO travel_albums").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(context.Background(), models.TravelAlbum{})
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestTravelAlbum_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)

	mock.ExpectQuery("FROM travel_albums").WithArgs(testAlbumID).WillReturnRows(travelAlbumRows())

	_, err := repo.FindByID(context.Background(), testAlbumID)
	assert.ErrorIs(t, err, ErrTravelAlbumNotFound)
}

func TestTravelAlbum_Delete(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)

	mock.ExpectExec("DELETE FROM travel_albums").
		WithArgs(testAlbumID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), testAlbumID))
}

func TestTravelAlbum_Delete_Error(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)

	mock.ExpectExec("DELETE FROM travel_albums").WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.Delete(context.Background(), testAlbumID), ErrExecutingQuery)
}

func TestTravelAlbum_ListByOwner(t *testing.T) {
	repo, mock := newTestTravelAlbumRepo(t)
	filter := models.AlbumFilter{
		OwnerID:    testUserID,
		SortColumn: "title",
		Descending: true,
		Page:       models.Page{Number: 1, Size: 12},
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM travel_albums WHERE created_by = \$1`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`LEFT JOIN travel_records r (.+) ORDER BY a.title DESC, a.id DESC LIMIT 12 OFFSET 0`).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_url", "city_name", "title", "travel_record_id", "created_by", "created_at", "record_title"}).
			AddRow(testAlbumID, "u1", "Wuhan", "b", testRecordID, testUserID, time.Now(), "Spring").
			AddRow("other", "u2", "Wuhan", "a", nil, testUserID, time.Now(), nil))

	photos, total, err := repo.ListByOwner(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, photos, 2)
	require.NotNil(t, photos[0].TravelRecordTitle)
	assert.Equal(t, "Spring", *photos[0].TravelRecordTitle)
	assert.Nil(t, photos[1].TravelRecordID)
	assert.Nil(t, photos[1].TravelRecordTitle)
}
