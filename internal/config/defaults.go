package config

import "time"

// Built-in fallbacks applied after every other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAuthRateLimit  = 20

	DefaultTokenSignKey  = "my-travel-secret-key"
	DefaultTokenIssuer   = "go-travel-journal"
	DefaultTokenDuration = 24 * time.Hour
	DefaultLogLevel      = "info"

	DefaultGeocoderURL     = "https://restapi.amap.com"
	DefaultGeocoderKey     = "392bcff2c90d015cf3fd379e74cfedc6"
	DefaultGeocoderTimeout = 5 * time.Second

	DefaultCoordinatesTTL = 7 * 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AuthRateLimit:  DefaultAuthRateLimit,
		},
		Adapter: Adapter{
			Geocoder: Geocoder{
				URL:     DefaultGeocoderURL,
				Key:     DefaultGeocoderKey,
				Timeout: DefaultGeocoderTimeout,
			},
			Redis: Redis{
				TTL: DefaultCoordinatesTTL,
			},
		},
	}
}
