package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/mock"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	recordID  = "0190c7a8-0000-7000-8000-0000000000b1"
	beijingID = "0190c7a8-0000-7000-8000-0000000000a2"
)

var (
	tripStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tripEnd   = time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC)
)

type travelRecordDeps struct {
	records  *mock.MockTravelRecordRepository
	albums   *mock.MockTravelAlbumRepository
	maps     *mock.MockTravelMapRepository
	geocoder *mock.MockGeocoder
}

// newTestTravelRecordSvc wires the record service to a real travel map
// service backed by mocks, so city resolution is exercised end to end.
func newTestTravelRecordSvc(t *testing.T) (TravelRecordService, travelRecordDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := travelRecordDeps{
		records:  mock.NewMockTravelRecordRepository(ctrl),
		albums:   mock.NewMockTravelAlbumRepository(ctrl),
		maps:     mock.NewMockTravelMapRepository(ctrl),
		geocoder: mock.NewMockGeocoder(ctrl),
	}
	maps := NewTravelMapService(deps.maps, deps.geocoder, logger.Nop())
	return NewTravelRecordService(deps.records, deps.albums, maps, logger.Nop()), deps
}

func aliceRecordView() models.TravelRecordView {
	return models.TravelRecordView{
		TravelRecord: models.TravelRecord{
			ID:          recordID,
			Title:       "Cherry blossoms",
			TravelMapID: wuhanID,
			StartTime:   tripStart,
			EndTime:     tripEnd,
			Description: "spring",
			CityImage:   "https://img/wuhan.jpg",
			IsShared:    true,
			CreatedBy:   aliceID,
		},
		TravelMap: wuhanMap,
		Owner:     models.UserSummary{ID: aliceID, Username: "alice"},
	}
}

func wuhanRecordRequest() models.CreateRecordRequest {
	return models.CreateRecordRequest{
		Title:       "Cherry blossoms",
		CityName:    "Wuhan",
		StartTime:   "2024-01-01",
		EndTime:     "2024-01-03",
		Description: "spring",
		CityImage:   "https://img/wuhan.jpg",
	}
}

func ptr[T any](v T) *T { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestTravelRecordService_Create_WithPhotos(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)
	ctx := context.Background()

	req := wuhanRecordRequest()
	req.Photos = []string{"https://img/1.jpg", "https://img/2.jpg", "https://img/3.jpg"}

	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(wuhanMap, nil)
	deps.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.TravelRecord) (models.TravelRecord, error) {
			assert.Equal(t, wuhanID, r.TravelMapID)
			assert.Equal(t, aliceID, r.CreatedBy)
			assert.True(t, r.IsShared, "isShared defaults to true")
			assert.True(t, tripStart.Equal(r.StartTime))
			assert.True(t, tripEnd.Equal(r.EndTime))
			r.ID = recordID
			return r, nil
		},
	)

	var albums []models.TravelAlbum
	deps.albums.EXPECT().Create(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, a models.TravelAlbum) (models.TravelAlbum, error) {
			albums = append(albums, a)
			return a, nil
		},
	)
	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	created, err := svc.Create(ctx, aliceID, req)
	require.NoError(t, err)

	assert.Equal(t, recordID, created.ID)
	assert.Equal(t, 3, created.AlbumsCreated)
	assert.Zero(t, created.AlbumsFailed)

	require.Len(t, albums, 3)
	for i, a := range albums {
		assert.Equal(t, req.Photos[i], a.ImageURL)
		assert.Equal(t, "Wuhan", a.CityName)
		assert.Equal(t, "Cherry blossoms", a.Title)
		assert.Equal(t, aliceID, a.CreatedBy)
		require.NotNil(t, a.TravelRecordID)
		assert.Equal(t, recordID, *a.TravelRecordID)
	}
}

// TestTravelRecordService_Create_PartialAlbumFailure verifies that a failed
// album entry is counted and the record survives.
func TestTravelRecordService_Create_PartialAlbumFailure(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	req := wuhanRecordRequest()
	req.Title = ""
	req.Photos = []string{"https://img/1.jpg", " ", "https://img/broken.jpg"}

	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(wuhanMap, nil)
	deps.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.TravelRecord) (models.TravelRecord, error) {
			r.ID = recordID
			return r, nil
		},
	)
	deps.albums.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.TravelAlbum) (models.TravelAlbum, error) {
			assert.Equal(t, "Trip to Wuhan", a.Title)
			if a.ImageURL == "https://img/broken.jpg" {
				return models.TravelAlbum{}, errors.New("connection reset")
			}
			return a, nil
		},
	).Times(2)
	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	created, err := svc.Create(context.Background(), aliceID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, created.AlbumsCreated)
	assert.Equal(t, 2, created.AlbumsFailed)
}

func TestTravelRecordService_Create_ExplicitlyPrivate(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	req := wuhanRecordRequest()
	req.IsShared = ptr(false)

	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(wuhanMap, nil)
	deps.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.TravelRecord) (models.TravelRecord, error) {
			assert.False(t, r.IsShared)
			r.ID = recordID
			return r, nil
		},
	)
	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	_, err := svc.Create(context.Background(), aliceID, req)
	require.NoError(t, err)
}

func TestTravelRecordService_Create_TimeRejections(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{name: "start after end", start: "2024-02-01", end: "2024-01-01", wantErr: ErrInvalidTimeRange},
		{name: "unparsable start", start: "soon", end: "2024-01-01", wantErr: ErrInvalidTime},
		{name: "unparsable end", start: "2024-01-01", end: "later", wantErr: ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTravelRecordSvc(t) // nothing is stored

			req := wuhanRecordRequest()
			req.StartTime, req.EndTime = tt.start, tt.end

			_, err := svc.Create(context.Background(), aliceID, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTravelRecordService_Create_SameDayTrip(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	req := wuhanRecordRequest()
	req.StartTime, req.EndTime = "2024-01-01", "2024-01-01"

	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(wuhanMap, nil)
	deps.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.TravelRecord) (models.TravelRecord, error) {
			r.ID = recordID
			return r, nil
		},
	)
	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	_, err := svc.Create(context.Background(), aliceID, req)
	require.NoError(t, err)
}

func TestTravelRecordService_Create_GeocoderDown(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(models.TravelMap{}, store.ErrTravelMapNotFound)
	deps.geocoder.EXPECT().ResolveCoordinates(gomock.Any(), "Wuhan").Return(models.Location{}, errors.New("timeout"))

	_, err := svc.Create(context.Background(), aliceID, wuhanRecordRequest())
	assert.ErrorIs(t, err, ErrGeoFailed)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestTravelRecordService_Update_ByOwner(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	beijing := models.TravelMap{ID: beijingID, CityName: "Beijing"}
	updated := aliceRecordView()
	updated.Title = "Hutongs"
	updated.TravelMapID = beijingID
	updated.TravelMap = beijing

	gomock.InOrder(
		deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil),
		deps.maps.EXPECT().FindByName(gomock.Any(), "Beijing").Return(beijing, nil),
		deps.records.EXPECT().Update(gomock.Any(), recordID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u models.RecordUpdate) (models.TravelRecord, error) {
				require.NotNil(t, u.Title)
				assert.Equal(t, "Hutongs", *u.Title)
				require.NotNil(t, u.TravelMapID)
				assert.Equal(t, beijingID, *u.TravelMapID)
				assert.Nil(t, u.StartTime)
				return updated.TravelRecord, nil
			},
		),
		deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(updated, nil),
	)

	got, err := svc.Update(context.Background(), aliceID, recordID, models.RecordPatch{
		Title:    ptr(" Hutongs "),
		CityName: ptr("Beijing"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Beijing", got.TravelMap.CityName)
}

func TestTravelRecordService_Update_ByStranger(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	_, err := svc.Update(context.Background(), bobID, recordID, models.RecordPatch{Title: ptr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTravelRecordService_Update_MergedRangeIsChecked(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	// the stored end is 2024-01-03
	_, err := svc.Update(context.Background(), aliceID, recordID, models.RecordPatch{StartTime: ptr("2024-02-01")})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestTravelRecordService_Update_BlankRequiredFields(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	_, err := svc.Update(context.Background(), aliceID, recordID, models.RecordPatch{
		Description: ptr(""),
		CityImage:   ptr("  "),
	})

	var mf *MissingFieldsError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, []string{"description", "cityImage"}, mf.Fields)
}

func TestTravelRecordService_Update_SameCityIsNoop(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)
	deps.maps.EXPECT().FindByName(gomock.Any(), "Wuhan").Return(wuhanMap, nil)

	got, err := svc.Update(context.Background(), aliceID, recordID, models.RecordPatch{CityName: ptr("Wuhan")})
	require.NoError(t, err)
	assert.Equal(t, recordID, got.ID)
}

func TestTravelRecordService_Delete(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svc, deps := newTestTravelRecordSvc(t)
		deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)
		deps.records.EXPECT().Delete(gomock.Any(), recordID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), aliceID, recordID))
	})

	t.Run("stranger", func(t *testing.T) {
		svc, deps := newTestTravelRecordSvc(t)
		deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), bobID, recordID), ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		svc, deps := newTestTravelRecordSvc(t)
		deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(models.TravelRecordView{}, store.ErrTravelRecordNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), aliceID, recordID), store.ErrTravelRecordNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newTestTravelRecordSvc(t)

		assert.ErrorIs(t, svc.Delete(context.Background(), aliceID, "abc"), ErrInvalidID)
	})
}

// ── Listings ─────────────────────────────────────────────────────────────────

func TestTravelRecordService_ListPublic_Sorting(t *testing.T) {
	tests := []struct {
		name       string
		sortBy     string
		sortOrder  string
		wantColumn string
		wantDesc   bool
	}{
		{name: "default", wantColumn: "created_at", wantDesc: true},
		{name: "unknown key falls back", sortBy: "password", sortOrder: "asc", wantColumn: "created_at", wantDesc: true},
		{name: "start time default desc", sortBy: "startTime", wantColumn: "start_time", wantDesc: true},
		{name: "end time asc", sortBy: "endTime", sortOrder: "asc", wantColumn: "end_time", wantDesc: false},
		{name: "desc is case insensitive", sortBy: "createdAt", sortOrder: "DESC", wantColumn: "created_at", wantDesc: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestTravelRecordSvc(t)
			page := models.Page{Number: 1, Size: 6}

			deps.records.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, f models.RecordFilter) ([]models.TravelRecordView, int, error) {
					assert.True(t, f.SharedOnly)
					assert.Equal(t, tt.wantColumn, f.SortColumn)
					assert.Equal(t, tt.wantDesc, f.Descending)
					assert.False(t, f.FilterByMap)
					return []models.TravelRecordView{aliceRecordView()}, 1, nil
				},
			)

			res, err := svc.ListPublic(context.Background(), models.RecordQuery{SortBy: tt.sortBy, SortOrder: tt.sortOrder, Page: page})
			require.NoError(t, err)
			assert.Equal(t, 1, res.Pagination.Total)
			assert.Equal(t, 1, res.Pagination.TotalPages)
		})
	}
}

func TestTravelRecordService_ListPublic_CityFilter(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.maps.EXPECT().FindIDsByName(gomock.Any(), "wu").Return([]string{wuhanID}, nil)
	deps.records.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.RecordFilter) ([]models.TravelRecordView, int, error) {
			assert.True(t, f.FilterByMap)
			assert.Equal(t, []string{wuhanID}, f.TravelMapIDs)
			return nil, 0, nil
		},
	)

	_, err := svc.ListPublic(context.Background(), models.RecordQuery{CityName: "wu", Page: models.Page{Number: 1, Size: 6}})
	require.NoError(t, err)
}

// TestTravelRecordService_ListPublic_UnknownCity verifies that a city filter
// matching nothing yields an empty page without querying records.
func TestTravelRecordService_ListPublic_UnknownCity(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.maps.EXPECT().FindIDsByName(gomock.Any(), "Atlantis").Return(nil, nil)

	res, err := svc.ListPublic(context.Background(), models.RecordQuery{CityName: "Atlantis", Page: models.Page{Number: 2, Size: 6}})
	require.NoError(t, err)
	assert.Empty(t, res.List)
	assert.Equal(t, 0, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.Page)
}

func TestTravelRecordService_ListMine(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.RecordFilter) ([]models.TravelRecordView, int, error) {
			assert.Equal(t, aliceID, f.OwnerID)
			assert.False(t, f.SharedOnly, "own private records are listed too")
			assert.Equal(t, "cherry", f.Title)
			assert.Equal(t, "created_at", f.SortColumn)
			assert.True(t, f.Descending)
			return []models.TravelRecordView{aliceRecordView()}, 7, nil
		},
	)

	res, err := svc.ListMine(context.Background(), models.RecordQuery{
		OwnerID: aliceID,
		Title:   " cherry ",
		Page:    models.Page{Number: 1, Size: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestTravelRecordService_GetDetail(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	_, err := svc.GetDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)

	deps.records.EXPECT().FindByID(gomock.Any(), recordID).Return(aliceRecordView(), nil)

	got, err := svc.GetDetail(context.Background(), recordID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner.Username)
}

// ── Timeline ─────────────────────────────────────────────────────────────────

func TestTravelRecordService_Timeline(t *testing.T) {
	svc, deps := newTestTravelRecordSvc(t)

	deps.records.EXPECT().Timeline(gomock.Any(), aliceID).Return([]models.TimelineEntry{
		{ID: recordID, CityName: "Wuhan", Title: "", StartTime: tripStart, EndTime: tripEnd},
		{ID: "other", CityName: "Beijing", Title: "Hutongs", StartTime: tripStart, EndTime: tripStart.Add(36 * time.Hour)},
	}, nil)

	entries, err := svc.Timeline(context.Background(), aliceID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Trip to Wuhan", entries[0].Title)
	assert.Equal(t, 3, entries[0].DurationDays)
	assert.Equal(t, "Hutongs", entries[1].Title)
	assert.Equal(t, 2, entries[1].DurationDays)
}
