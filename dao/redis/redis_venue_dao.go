package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vs-server/db"
	"vs-server/models/venue"
)

const VENUES_GEO_KEY_V1 = "venue_hours_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venue_hours_place_v1:%s"

// ErrVenueNotFound is returned by GetVenue for unknown IDs.
var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO stores the venue catalog in Redis: a geo index for
// nearby lookups plus one JSON blob per venue.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with its JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.VenueID)
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.VenueLat, v.VenueLon, v)
}

// GetVenue retrieves one venue by ID. Decoding re-parses the raw
// hours entries, so the returned venue carries usable TimeSlots.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*venue.Venue, error) {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return nil, fmt.Errorf("failed to get venue %s from redis: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON for %s: %w", venueID, err)
	}
	return &v, nil
}

// GetNearbyVenues retrieves venues within a radius (meters) of a
// coordinate.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the store.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	prefix := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteVenue removes a venue's JSON blob. The geo index entry is
// cleaned up lazily by nearby reads that skip members without data.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	return nil
}
