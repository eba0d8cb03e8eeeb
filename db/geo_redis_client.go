package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient backs the venue store with a real Redis instance:
// geo index via GEOADD/GEORADIUS plus one JSON blob per member.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an already-configured go-redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair.
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a key. A missing key yields
// ErrKeyNotFound.
func (r *GeoRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Del removes a key.
func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Keys lists keys matching a glob pattern.
func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// AddLocationWithJSON indexes a member's coordinates under geoKey and
// stores its JSON payload under memberKey.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for %s: %w", memberKey, err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation for %s: %w", memberKey, err)
	}

	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data for %s: %w", memberKey, err)
	}

	return nil
}

// GetLocationsWithinRadius returns the JSON payloads of all members
// within the given radius (meters) of the coordinate.
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "m",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius on %s: %w", key, err)
	}

	payloads := make([]string, 0, len(results))
	for _, res := range results {
		data, err := r.Get(res.Name)
		if err != nil {
			// Geo member without a payload: index and blobs drifted
			// apart, skip it rather than failing the whole read.
			log.Printf("[GeoRedisClient] missing payload for geo member %s: %v", res.Name, err)
			continue
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}

// GetContext returns the context the client was created with.
func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks connectivity.
func (r *GeoRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
