package models

import "time"

// TravelRecord is a journal entry as persisted.
type TravelRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TravelMapID string    `json:"travelMapId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
	CityImage   string    `json:"cityImage"`
	Article     string    `json:"article"`
	IsShared    bool      `json:"isShared"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdById"`
}

// TableName returns the name of the database table
// associated with the TravelRecord model.
func (r TravelRecord) TableName() string {
	return "travel_records"
}

// TravelRecordView is a record joined with its city and owner.
type TravelRecordView struct {
	TravelRecord
	TravelMap TravelMap   `json:"travelMap"`
	Owner     UserSummary `json:"createdBy"`
}

// CreatedRecord is the result of a record creation together with the
// outcome of the photo album batch.
type CreatedRecord struct {
	TravelRecordView
	AlbumsCreated int `json:"albumsCreated"`
	AlbumsFailed  int `json:"albumsFailed"`
}

// CreateRecordRequest carries the fields accepted by record creation.
// Times are kept as strings so that missing and malformed values can be
// told apart.
type CreateRecordRequest struct {
	Title       string   `json:"title"`
	CityName    string   `json:"cityName"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Description string   `json:"description"`
	CityImage   string   `json:"cityImage"`
	Article     string   `json:"article"`
	Photos      []string `json:"photos"`
	IsShared    *bool    `json:"isShared"`
}

// RecordPatch is a partial record update. Nil fields are left untouched.
type RecordPatch struct {
	Title       *string `json:"title"`
	CityName    *string `json:"cityName"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Description *string `json:"description"`
	CityImage   *string `json:"cityImage"`
	Article     *string `json:"article"`
	IsShared    *bool   `json:"isShared"`
}

// RecordUpdate is a validated [RecordPatch] ready to be persisted.
type RecordUpdate struct {
	Title       *string
	TravelMapID *string
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
	CityImage   *string
	Article     *string
	IsShared    *bool
}

// IsEmpty reports whether the update changes nothing.
func (u RecordUpdate) IsEmpty() bool {
	return u.Title == nil && u.TravelMapID == nil && u.StartTime == nil && u.EndTime == nil &&
		u.Description == nil && u.CityImage == nil && u.Article == nil && u.IsShared == nil
}

// RecordQuery holds list filters, sorting and pagination for record
// listings.
type RecordQuery struct {
	Title      string
	CityName   string
	OwnerID    string
	SharedOnly bool
	SortBy     string
	SortOrder  string
	Page       Page
}

// RecordFilter is a [RecordQuery] after city names were resolved to
// travel map ids.
type RecordFilter struct {
	Title        string
	OwnerID      string
	SharedOnly   bool
	TravelMapIDs []string
	FilterByMap  bool
	SortColumn   string
	Descending   bool
	Page         Page
}

// TimelineEntry is a record reduced for the owner's timeline.
type TimelineEntry struct {
	ID           string    `json:"id"`
	CityID       string    `json:"cityId"`
	CityName     string    `json:"cityName"`
	CityImage    string    `json:"cityImage"`
	Description  string    `json:"description"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	DurationDays int       `json:"durationDays"`
}
