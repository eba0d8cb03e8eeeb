package models

import "vs-server/models/venue"

// CatalogVenuesResponse is the top-level JSON returned by the venue
// catalog's GET /venues/nearby endpoint.
type CatalogVenuesResponse struct {
	Status  string        `json:"status"`
	Venues  []venue.Venue `json:"venues"`
	VenuesN int           `json:"venues_n"`
}
