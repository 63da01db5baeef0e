package models

import "time"

// TravelAlbum is one photo entry.
type TravelAlbum struct {
	ID             string    `json:"id"`
	ImageURL       string    `json:"imageUrl"`
	CityName       string    `json:"cityName"`
	Title          string    `json:"title"`
	TravelRecordID *string   `json:"travelRecordId"`
	CreatedBy      string    `json:"createdById"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the TravelAlbum model.
func (a TravelAlbum) TableName() string {
	return "travel_albums"
}

// AlbumPhoto is an album entry joined with the title of the record it
// was created from, if any.
type AlbumPhoto struct {
	TravelAlbum
	TravelRecordTitle *string `json:"travelRecordTitle"`
}

// CreateAlbumRequest carries the fields accepted by album creation.
type CreateAlbumRequest struct {
	ImageURL string `json:"imageUrl"`
	CityName string `json:"cityName"`
	Title    string `json:"title"`
}

// AlbumQuery holds sorting and pagination for album listings.
type AlbumQuery struct {
	OwnerID   string
	SortBy    string
	SortOrder string
	Page      Page
}

// AlbumFilter is an [AlbumQuery] with the sort resolved to a column.
type AlbumFilter struct {
	OwnerID    string
	SortColumn string
	Descending bool
	Page       Page
}
