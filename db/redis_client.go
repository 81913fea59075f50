package db

import "context"

// KeyNotFoundError is returned by Get when a key has never been set.
// Callers that treat a missing key as "no state yet" match against it.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return "key not found: " + e.Key
}

// RedisClient defines the key-value and geo operations the engine needs from
// its state store. Concrete backends (real Redis, in-memory mock) sit behind
// this contract; nothing above it assumes a specific database.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
