package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the coordinates cache and verifies the
// connection with a PING.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.Address, err)
	}

	return rdb, nil
}
