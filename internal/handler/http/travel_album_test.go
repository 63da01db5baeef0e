package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTravelAlbum(t *testing.T) {
	h := newTestHandler(&service.Services{
		TravelAlbumService: &mockTravelAlbumService{
			createFn: func(_ context.Context, ownerID string, req models.CreateAlbumRequest) (models.TravelAlbum, error) {
				assert.Equal(t, testUserID, ownerID)
				if req.Title == "" {
					return models.TravelAlbum{}, &service.MissingFieldsError{Fields: []string{"title"}}
				}
				return models.TravelAlbum{ID: testAlbumID, ImageURL: req.ImageURL, Title: req.Title}, nil
			},
		},
	})

	ok := decodeEnvelope(t, serve(h.createTravelAlbum, http.MethodPost, "/api/travel-album",
		`{"imageUrl":"https://img/1.jpg","cityName":"Wuhan","title":"Tower"}`))
	assert.True(t, ok.Success)
	assert.Contains(t, string(ok.Data), `"travelRecordId":null`)

	missing := decodeEnvelope(t, serve(h.createTravelAlbum, http.MethodPost, "/api/travel-album",
		`{"imageUrl":"https://img/1.jpg","cityName":"Wuhan"}`))
	assert.False(t, missing.Success)
	assert.Equal(t, []string{"title"}, missing.Required)
}

func TestDeleteTravelAlbum(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantSuccess bool
		wantMessage string
	}{
		{name: "owner", wantSuccess: true, wantMessage: "photo deleted"},
		{name: "stranger", err: service.ErrForbidden, wantMessage: "no permission to modify this resource"},
		{name: "gone", err: store.ErrTravelAlbumNotFound, wantMessage: "photo not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{
				TravelAlbumService: &mockTravelAlbumService{
					deleteFn: func(_ context.Context, _ string, id string) error {
						assert.Equal(t, testAlbumID, id)
						return tt.err
					},
				},
			})

			env := decodeEnvelope(t, serve(h.deleteTravelAlbum, http.MethodDelete, "/", "", "id", testAlbumID))

			assert.Equal(t, tt.wantSuccess, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestListMyPhotos_DefaultPageSizes(t *testing.T) {
	var sizes []int
	h := newTestHandler(&service.Services{
		TravelAlbumService: &mockTravelAlbumService{
			listMineFn: func(_ context.Context, q models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error) {
				assert.Equal(t, testUserID, q.OwnerID)
				sizes = append(sizes, q.Page.Size)
				return models.NewPageResult[models.AlbumPhoto](nil, 0, q.Page), nil
			},
		},
	})

	serve(h.listMyPhotos, http.MethodGet, "/api/travel-album/my-photos", "")
	serve(h.listMyPhotosGallery, http.MethodGet, "/api/users/my-photos", "")

	require.Len(t, sizes, 2)
	assert.Equal(t, []int{defaultAlbumPageSize, defaultGalleryPageSize}, sizes)
}

func TestListMyPhotos_SortParams(t *testing.T) {
	h := newTestHandler(&service.Services{
		TravelAlbumService: &mockTravelAlbumService{
			listMineFn: func(_ context.Context, q models.AlbumQuery) (models.PageResult[models.AlbumPhoto], error) {
				assert.Equal(t, "title", q.SortBy)
				assert.Equal(t, "asc", q.SortOrder)
				return models.NewPageResult[models.AlbumPhoto](nil, 0, q.Page), nil
			},
		},
	})

	env := decodeEnvelope(t, serve(h.listMyPhotos, http.MethodGet, "/api/travel-album/my-photos?sortBy=title&sortOrder=asc", ""))
	assert.True(t, env.Success)
}
