package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
	"github.com/redis/go-redis/v9"
)

const coordinatesKeyPrefix = "travel-journal:coordinates:"

// coordinatesCache is a read-through cache in front of a Geocoder. Cache
// failures are logged and never fail the lookup; only successful lookups
// are cached.
type coordinatesCache struct {
	rdb  redis.Cmdable
	ttl  time.Duration
	next Geocoder
}

// NewCoordinatesCache returns a [GeocoderWrapper] that caches resolved
// coordinates in Redis for ttl.
func NewCoordinatesCache(rdb redis.Cmdable, ttl time.Duration) GeocoderWrapper {
	return &coordinatesCache{rdb: rdb, ttl: ttl}
}

// Wrap implements [GeocoderWrapper].
func (c *coordinatesCache) Wrap(next Geocoder) Geocoder {
	return &coordinatesCache{rdb: c.rdb, ttl: c.ttl, next: next}
}

// ResolveCoordinates implements [Geocoder].
func (c *coordinatesCache) ResolveCoordinates(ctx context.Context, cityName string) (models.Location, error) {
	log := logger.FromContext(ctx)
	key := coordinatesKeyPrefix + cityName

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		location, parseErr := ParseLonLat(cached)
		if parseErr == nil {
			return location, nil
		}
		log.Warn().Err(parseErr).Str("func", "coordinatesCache.ResolveCoordinates").Str("key", key).Msg("dropping malformed cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "coordinatesCache.ResolveCoordinates").Str("key", key).Msg("coordinates cache read failed")
	}

	location, err := c.next.ResolveCoordinates(ctx, cityName)
	if err != nil {
		return models.Location{}, err
	}

	if err = c.rdb.Set(ctx, key, FormatLonLat(location), c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("func", "coordinatesCache.ResolveCoordinates").Str("key", key).Msg("coordinates cache write failed")
	}

	return location, nil
}
