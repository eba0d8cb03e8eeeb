package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"vs-server/dao/redis"
	"vs-server/models/schedule"
	"vs-server/models/venue"
	services "vs-server/service"
)

const (
	LAT_QUERY_ARG       = "lat"
	LON_QUERY_ARG       = "lon"
	RADIUS_QUERY_ARG    = "radius"
	AT_QUERY_ARG        = "at"
	OPEN_ONLY_QUERY_ARG = "open_only"
)

// StatusView is the JSON rendering of an evaluated status.
type StatusView struct {
	Status    string     `json:"status"`
	Indicator string     `json:"indicator"`
	OpenedOn  string     `json:"opened_on,omitempty"`
	ClosesAt  *time.Time `json:"closes_at,omitempty"`
	OpensAt   *time.Time `json:"opens_at,omitempty"`
}

// VenueWithStatus pairs a venue with its evaluated status.
type VenueWithStatus struct {
	Venue  venue.Venue `json:"venue"`
	Status StatusView  `json:"status"`
}

// VenueHoursView is the response shape of the hours endpoint.
type VenueHoursView struct {
	VenueID      string           `json:"venue_id"`
	VenueName    string           `json:"venue_name"`
	Week         []venue.DayHours `json:"week"`
	KitchenToday string           `json:"kitchen_today,omitempty"`
}

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetVenuesNearby handles GET /v1/venues/nearby.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, at, openOnly, ok := h.parseNearbyArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, err := h.venueService.GetVenuesNearby(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	result := h.annotate(venues, at, openOnly)
	writeJSON(w, http.StatusOK, result)
}

// GetVenueStatus handles GET /v1/venues/{id}/status.
func (h *VenueHandler) GetVenueStatus(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]
	at, ok := parseArgTime(r.URL.Query(), w)
	if !ok {
		return
	}

	status, err := h.venueService.GetVenueStatus(venueID, at)
	if err != nil {
		if errors.Is(err, redis.ErrVenueNotFound) {
			http.Error(w, "Venue not found", http.StatusNotFound)
			return
		}
		log.Println("Error loading venue status:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statusView(status))
}

// GetVenueHours handles GET /v1/venues/{id}/hours.
func (h *VenueHandler) GetVenueHours(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]
	at, ok := parseArgTime(r.URL.Query(), w)
	if !ok {
		return
	}

	v, err := h.venueService.GetVenue(venueID)
	if err != nil {
		if errors.Is(err, redis.ErrVenueNotFound) {
			http.Error(w, "Venue not found", http.StatusNotFound)
			return
		}
		log.Println("Error loading venue:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, VenueHoursView{
		VenueID:      v.VenueID,
		VenueName:    v.VenueName,
		Week:         v.WeeklyHoursDisplay(at),
		KitchenToday: v.KitchenDisplay(at),
	})
}

// Ping handles GET /ping.
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *VenueHandler) parseNearbyArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, at time.Time, openOnly bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	at, ok = parseArgTime(vals, w)
	if !ok {
		return
	}
	if v := vals.Get(OPEN_ONLY_QUERY_ARG); v != "" {
		openOnly, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// annotate evaluates each venue's status, optionally keeps only the
// open ones, and sorts: open venues first, alphabetical within each
// group.
func (h *VenueHandler) annotate(venues []venue.Venue, at time.Time, openOnly bool) []VenueWithStatus {
	out := make([]VenueWithStatus, 0, len(venues))
	for i := range venues {
		status := h.venueService.StatusOn(&venues[i], at)
		if openOnly && !status.IsOpen() {
			continue
		}
		out = append(out, VenueWithStatus{Venue: venues[i], Status: statusView(status)})
	}
	sort.Slice(out, func(i, j int) bool {
		oi := out[i].Status.Status == "open" || out[i].Status.Status == "closes_soon"
		oj := out[j].Status.Status == "open" || out[j].Status.Status == "closes_soon"
		if oi != oj {
			return oi
		}
		return out[i].Venue.VenueName < out[j].Venue.VenueName
	})
	return out
}

func statusView(s schedule.Status) StatusView {
	view := StatusView{
		Status:    s.Kind.String(),
		Indicator: s.IndicatorText(),
	}
	switch s.Kind {
	case schedule.KindOpen, schedule.KindClosesSoon:
		view.OpenedOn = s.OpenedOn.String()
		closesAt := s.ClosesAt
		view.ClosesAt = &closesAt
	case schedule.KindOpensLater:
		opensAt := s.OpensAt
		view.OpensAt = &opensAt
	}
	return view
}

// parseArgTime reads the optional "at" query arg (RFC3339), defaulting
// to now. ok is false when the value is present but malformed; the
// error response is already written in that case.
func parseArgTime(vals url.Values, w http.ResponseWriter) (time.Time, bool) {
	s := vals.Get(AT_QUERY_ARG)
	if s == "" {
		return time.Now(), true
	}
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
		return time.Time{}, false
	}
	return at, true
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
