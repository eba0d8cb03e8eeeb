package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueHandler is the handler surface the router needs; satisfied by
// handlers.VenueHandler and by test doubles.
type VenueHandler interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenueStatus(w http.ResponseWriter, r *http.Request)
	GetVenueHours(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueHandler
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(venueHandler VenueHandler, router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude}&lon={longitude}&radius={meters}[&at=RFC3339][&open_only=bool]
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	// optional ?at=RFC3339 on both
	r.router.HandleFunc("/v1/venues/{id}/status", r.venueHandler.GetVenueStatus).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id}/hours", r.venueHandler.GetVenueHours).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
