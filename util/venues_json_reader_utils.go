package util

import (
	"encoding/json"
	"fmt"
	"os"

	"vs-server/models"
	"vs-server/models/venue"
)

// ReadCatalogVenuesResponseFromJSON loads a CatalogVenuesResponse from JSON on disk.
func ReadCatalogVenuesResponseFromJSON(filePath string) (*models.CatalogVenuesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.CatalogVenuesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CatalogVenuesResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &v, nil
}

// ReadVenuesIds loads a flat list of venue IDs from JSON on disk.
func ReadVenuesIds(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue IDs: %w", err)
	}
	return ids, nil
}
