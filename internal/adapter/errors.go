package adapter

import "errors"

var (
	// ErrGeocodeNoResult means the provider answered but found no usable
	// coordinates for the address.
	ErrGeocodeNoResult = errors.New("geocoder returned no result")
	// ErrGeocodeForbidden means the provider rejected the API key, usually
	// because the caller's IP is not whitelisted.
	ErrGeocodeForbidden = errors.New("geocoder rejected the api key")
	// ErrGeocodeProvider wraps any other provider-reported failure.
	ErrGeocodeProvider = errors.New("geocoder provider error")
	// ErrGeocodeUnreachable covers transport failures, timeouts and non-2xx
	// HTTP responses.
	ErrGeocodeUnreachable = errors.New("geocoder unreachable")
)
