package venue

import (
	"encoding/json"
	"fmt"
	"log"

	"vs-server/models/schedule"
)

// Venue represents a bar/business with a weekly recurring opening
// schedule, as delivered by the venue catalog.
type Venue struct {
	VenueID      string  `json:"venue_id"`
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	VenueLat     float64 `json:"venue_lat"`
	VenueLon     float64 `json:"venue_lng"`

	// Extra details coming from the catalog:
	VenueType  string  `json:"venue_type,omitempty"`
	PriceLevel int     `json:"price_level,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Reviews    int     `json:"reviews,omitempty"`

	// Raw hours entries, each "<wd>/<H>:<M>/<H>:<M>".
	Hours        []string `json:"hours,omitempty"`
	KitchenHours []string `json:"kitchen_hours,omitempty"`

	// Parsed forms, rebuilt on every decode. Not serialized.
	TimeSlots        []schedule.TimeSlot `json:"-"`
	KitchenTimeSlots []schedule.TimeSlot `json:"-"`
}

// UnmarshalJSON decodes the catalog shape and parses the hours
// entries. Malformed entries are dropped and logged with the venue ID
// so bad catalog data stays visible without failing the whole decode.
func (v *Venue) UnmarshalJSON(data []byte) error {
	// Alias avoids infinite recursion back into this method.
	type Alias Venue
	if err := json.Unmarshal(data, (*Alias)(v)); err != nil {
		return err
	}
	v.TimeSlots = parseSlots(v.VenueID, "hours", v.Hours)
	v.KitchenTimeSlots = parseSlots(v.VenueID, "kitchen_hours", v.KitchenHours)
	return nil
}

func parseSlots(venueID, field string, raw []string) []schedule.TimeSlot {
	if len(raw) == 0 {
		return nil
	}
	slots := make([]schedule.TimeSlot, 0, len(raw))
	for _, s := range raw {
		slot, ok := schedule.ParseTimeSlot(s)
		if !ok {
			log.Printf("[Venue] dropping malformed %s entry %q for venue %s", field, s, venueID)
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func (v *Venue) String() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, lat=%f, lon=%f)",
		v.VenueID, v.VenueName, v.VenueLat, v.VenueLon)
}
