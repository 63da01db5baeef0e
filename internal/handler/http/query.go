package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	defaultRecordPageSize  = 6
	defaultAlbumPageSize   = 6
	defaultGalleryPageSize = 12
)

// pageFromQuery reads page and pageSize. Missing or malformed values fall
// back to the first page and defaultSize.
func pageFromQuery(r *http.Request, defaultSize int) models.Page {
	q := r.URL.Query()
	return models.NewPage(queryInt(q.Get("page")), queryInt(q.Get("pageSize")), defaultSize)
}

func queryInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func recordQueryFromRequest(r *http.Request) models.RecordQuery {
	q := r.URL.Query()
	return models.RecordQuery{
		Title:     strings.TrimSpace(q.Get("title")),
		CityName:  strings.TrimSpace(q.Get("cityName")),
		SortBy:    strings.TrimSpace(q.Get("sortBy")),
		SortOrder: strings.TrimSpace(q.Get("sortOrder")),
		Page:      pageFromQuery(r, defaultRecordPageSize),
	}
}

func albumQueryFromRequest(r *http.Request, defaultSize int) models.AlbumQuery {
	q := r.URL.Query()
	return models.AlbumQuery{
		SortBy:    strings.TrimSpace(q.Get("sortBy")),
		SortOrder: strings.TrimSpace(q.Get("sortOrder")),
		Page:      pageFromQuery(r, defaultSize),
	}
}
