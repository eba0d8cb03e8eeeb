package catalog

import (
	"vs-server/models"
	"vs-server/models/venue"
)

// CatalogAPI defines the interface for the upstream venue catalog.
type CatalogAPI interface {
	GetVenuesNearby(lat, lon float64) (*models.CatalogVenuesResponse, error)
	GetVenue(venueID string) (*venue.Venue, error)
	SetAPIKey(apiKey string)
}
