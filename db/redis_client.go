package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for a missing key, regardless of
// which client implementation is in use.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the operations the venue DAO needs from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
}
