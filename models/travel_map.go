package models

import (
	"encoding/json"
	"errors"
	"time"
)

// TravelMap is one row per distinct city name together with its
// coordinates.
type TravelMap struct {
	ID        string    `json:"id"`
	CityName  string    `json:"cityName"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the TravelMap model.
func (m TravelMap) TableName() string {
	return "travel_maps"
}

// Location is a geographic point. It is serialized as a GeoJSON point:
// {"type":"Point","coordinates":[longitude, latitude]}.
type Location struct {
	Longitude float64
	Latitude  float64
}

type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// MarshalJSON implements [json.Marshaler].
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (l *Location) UnmarshalJSON(data []byte) error {
	var point geoJSONPoint
	if err := json.Unmarshal(data, &point); err != nil {
		return err
	}
	if len(point.Coordinates) != 2 {
		return errors.New("location must contain exactly two coordinates")
	}

	l.Longitude, l.Latitude = point.Coordinates[0], point.Coordinates[1]
	return nil
}

// Footprint is a city the user has at least one travel record in.
type Footprint struct {
	CityName string   `json:"cityName"`
	Location Location `json:"location"`
}

// CityRef is a lightweight reference to a travel map row.
type CityRef struct {
	ID       string `json:"id"`
	CityName string `json:"cityName"`
}

// CityRequest is the body of travel map create and rename requests.
type CityRequest struct {
	CityName string `json:"cityName"`
}
