package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

const amapGeocodePath = "/v3/geocode/geo"

type amapGeocoder struct {
	client *utils.HTTPClient
	key    string
}

// amapGeocodeResponse is the subset of the AMap geocoding response the
// adapter reads. Every scalar arrives as a string.
type amapGeocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	InfoCode string `json:"infocode"`
	Geocodes []struct {
		Location json.RawMessage `json:"location"`
	} `json:"geocodes"`
}

// NewAMapGeocoder constructs a [Geocoder] backed by the AMap REST API.
// Every lookup is a single attempt bounded by cfg.Timeout.
func NewAMapGeocoder(cfg config.Geocoder) Geocoder {
	return &amapGeocoder{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.URL, "/"), cfg.Timeout),
		key:    cfg.Key,
	}
}

// ResolveCoordinates implements [Geocoder].
func (a *amapGeocoder) ResolveCoordinates(ctx context.Context, cityName string) (models.Location, error) {
	log := logger.FromContext(ctx)

	var body amapGeocodeResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":     a.key,
			"address": cityName,
			"output":  "JSON",
		}).
		SetResult(&body).
		Get(amapGeocodePath)
	if err != nil {
		log.Err(err).Str("func", "amapGeocoder.ResolveCoordinates").Str("city", cityName).Msg("geocode request failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodeUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "amapGeocoder.ResolveCoordinates").Str("city", cityName).Msg("geocode provider returned non-2xx")
		return models.Location{}, err
	}

	if err = mapGeocodeStatus(body.Status, body.InfoCode, body.Info); err != nil {
		log.Err(err).
			Str("func", "amapGeocoder.ResolveCoordinates").
			Str("city", cityName).
			Str("status", body.Status).
			Str("infocode", body.InfoCode).
			Msg("geocode provider reported an error")
		return models.Location{}, err
	}

	if len(body.Geocodes) == 0 {
		return models.Location{}, fmt.Errorf("%w: %s", ErrGeocodeNoResult, cityName)
	}

	location, err := parseLocation(body.Geocodes[0].Location)
	if err != nil {
		log.Err(err).Str("func", "amapGeocoder.ResolveCoordinates").Str("city", cityName).Msg("unparsable location")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodeNoResult, err)
	}

	return location, nil
}

// parseLocation decodes a "lon,lat" pair. The provider sends an empty array
// instead of a string when it has no location.
func parseLocation(raw json.RawMessage) (models.Location, error) {
	var pair string
	if err := json.Unmarshal(raw, &pair); err != nil {
		return models.Location{}, fmt.Errorf("location is not a string: %s", raw)
	}

	return ParseLonLat(pair)
}

// ParseLonLat parses the "lon,lat" text form used by the provider and by
// the coordinates cache.
func ParseLonLat(pair string) (models.Location, error) {
	parts := strings.Split(pair, ",")
	if len(parts) != 2 {
		return models.Location{}, fmt.Errorf("malformed location %q", pair)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("malformed longitude %q: %w", parts[0], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("malformed latitude %q: %w", parts[1], err)
	}

	return models.Location{Longitude: lon, Latitude: lat}, nil
}

// FormatLonLat is the inverse of ParseLonLat.
func FormatLonLat(loc models.Location) string {
	return strconv.FormatFloat(loc.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Latitude, 'f', -1, 64)
}
