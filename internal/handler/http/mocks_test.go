package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockIdentityService implements service.IdentityService for unit tests.
// Each method field can be overridden per test case.
type mockIdentityService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	getProfileFn     func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error)
	updateNicknameFn func(ctx context.Context, userID, nickname string) (models.User, error)
	createTokenFn    func(ctx context.Context, userID string) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockIdentityService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerFn(ctx, req)
}

func (m *mockIdentityService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockIdentityService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockIdentityService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error) {
	return m.updateProfileFn(ctx, userID, patch)
}

func (m *mockIdentityService) UpdateNickname(ctx context.Context, userID, nickname string) (models.User, error) {
	return m.updateNicknameFn(ctx, userID, nickname)
}

func (m *mockIdentityService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	return m.createTokenFn(ctx, userID)
}

func (m *mockIdentityService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockTravelMapService struct {
	findOrCreateFn func(ctx context.Context, cityName string) (models.TravelMap, error)
	createFn       func(ctx context.Context, cityName string) (models.TravelMap, error)
	listFn         func(ctx context.Context, nameFilter string) ([]models.TravelMap, error)
	matchingIDsFn  func(ctx context.Context, nameFilter string) ([]string, error)
	getFn          func(ctx context.Context, id string) (models.TravelMap, error)
	renameFn       func(ctx context.Context, id, cityName string) (models.TravelMap, error)
	deleteFn       func(ctx context.Context, id string) error
	footprintsFn   func(ctx context.Context, ownerID string) ([]models.Footprint, error)
	myCitiesFn     func(ctx context.Context, ownerID string) ([]models.CityRef, error)
}

func (m *mockTravelMapService) FindOrCreate(ctx context.Context, cityName string) (models.TravelMap, error) {
	return m.findOrCreateFn(ctx, cityName)
}

func (m *mockTravelMapService) Create(ctx context.Context, cityName string) (models.TravelMap, error) {
	return m.createFn(ctx, cityName)
}

func (m *mockTravelMapService) List(ctx context.Context, nameFilter string) ([]models.TravelMap, error) {
	return m.listFn(ctx, nameFilter)
}

func (m *mockTravelMapService) MatchingIDs(ctx context.Context, nameFilter string) ([]string, error) {
	return m.matchingIDsFn(ctx, nameFilter)
}

func (m *mockTravelMapService) Get(ctx context.Context, id string) (models.TravelMap, error) {
	return m.getFn(ctx, id)
}

func (m *mockTravelMapService) Rename(ctx context.Context, id, cityName string) (models.TravelMap, error) {
	return m.renameFn(ctx, id, cityName)
}

func (m *mockTravelMapService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTravelMapService) Footprints(ctx context.Context, ownerID string) ([]models.Footprint, error) {
	return m.footprintsFn(ctx, ownerID)
}

func (m *mockTravelMapService) MyCities(ctx context.Context, ownerID string) ([]models.CityRef, error) {
	return m.myCitiesFn(ctx, ownerID)
}

type mockTravelRecordService struct {
	createFn     func(ctx context.Context, ownerID string, req models.CreateRecordRequest) (models.CreatedRecord, error)
	updateFn     func(ctx context.Context, ownerID, id string, patch models.RecordPatch) (models.TravelRecordView, error)
	deleteFn     func(ctx context.Context, ownerID, id string) error
	listPublicFn func(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error)
	listMineFn   func(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error)
	getDetailFn  func(ctx context.Context, id string) (models.TravelRecordView, error)
	timelineFn   func(ctx context.Context, ownerID string) ([]models.TimelineEntry, error)
}

func (m *mockTravelRecordService) Create(ctx context.Context, ownerID string, req models.CreateRecordRequest) (models.CreatedRecord, error) {
	return m.createFn(ctx, ownerID, req)
}

func (m *mockTravelRecordService) Update(ctx context.Context, ownerID, id string, patch models.RecordPatch) (models.TravelRecordView, error) {
	return m.updateFn(ctx, ownerID, id, patch)
}

func (m *mockTravelRecordService) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFn(ctx, ownerID, id)
}

func (m *mockTravelRecordService) ListPublic(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	return m.listPublicFn(ctx, query)
}

func (m *mockTravelRecordService) ListMine(ctx context.Context, query models.RecordQuery) (models.PageResult[models.TravelRecordView], error) {
	return m.listMineFn(ctx, query)
}

func (m *mockTravelRecordService) GetDetail(ctx context.Context, id string) (models.TravelRecordView, error) {
	return m.getDetailFn(ctx, id)
}

func (m *mockTravelRecordService) Timeline(ctx context.Context, ownerID string) ([]models.TimelineEntry, error) {
	return m.timelineFn(ctx, ownerID)
}

type mockTravelAlbumService struct {
	createFn   func(ctx context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error)
	deleteFn   func(ctx context.Context, ownerID, id string) error
	listMineFn func(ctx context.Context, query models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error)
}

func (m *mockTravelAlbumService) Create(ctx context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error) {
	return m.createFn(ctx, ownerID, req)
}

func (m *mockTravelAlbumService) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFn(ctx, ownerID, id)
}

func (m *mockTravelAlbumService) ListMine(ctx context.Context, query models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error) {
	return m.listMineFn(ctx, query)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID   = "0190c7a8-0000-7000-8000-000000000001"
	testRecordID = "0190c7a8-0000-7000-8000-0000000000b1"
	testMapID    = "0190c7a8-0000-7000-8000-0000000000a1"
	testAlbumID  = "0190c7a8-0000-7000-8000-0000000000c1"
)

// newTestHandler builds a Handler around svcs with default settings.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, nil, logger.Nop())
}

// serve calls handler directly with an authenticated context and the given
// chi URL params (name/value pairs).
func serve(handler http.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = utils.WithUserID(ctx, testUserID)

	rec := httptest.NewRecorder()
	handler(rec, req.WithContext(ctx))
	return rec
}

// envelope decodes the response body; data is kept raw for per-test decoding.
type testEnvelope struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Success  bool            `json:"success"`
	Required []string        `json:"required"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}
