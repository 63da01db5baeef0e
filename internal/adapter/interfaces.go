// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external systems the journal
// depends on.
//
// The primary abstraction is [Geocoder], which resolves a free-form city name
// into coordinates. The package ships an AMap REST implementation
// ([NewAMapGeocoder]) and an optional Redis read-through cache
// ([NewCoordinatesCache]) that decorates any Geocoder.
//
// Error values defined in errors.go are mapped from provider responses by
// mapGeocodeStatus so that callers can use [errors.Is] without knowing the
// provider's wire format.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/geocoder_mock.go -package=mock

// Geocoder resolves a city name into a geographic point.
type Geocoder interface {
	// ResolveCoordinates performs a single lookup for cityName. It returns
	// one of the sentinel errors from this package (possibly wrapped) when
	// the provider has no answer, rejects the key, reports an error, or
	// cannot be reached.
	ResolveCoordinates(ctx context.Context, cityName string) (models.Location, error)
}

// GeocoderWrapper defines middleware composition for Geocoder.
// Implementations wrap an existing Geocoder to add behavior such as caching.
type GeocoderWrapper interface {
	Wrap(Geocoder) Geocoder
}
