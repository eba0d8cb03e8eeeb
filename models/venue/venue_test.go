package venue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vs-server/models/schedule"
)

func TestVenue_UnmarshalJSON_ParsesHours(t *testing.T) {
	payload := `{
		"venue_id": "ven_42",
		"venue_name": "Test Bar",
		"venue_lat": 34.05,
		"venue_lng": -118.25,
		"hours": ["mon/9:0/23:30", "fri/18:0/2:0"],
		"kitchen_hours": ["fri/18:0/22:0"]
	}`

	var v Venue
	require.NoError(t, json.Unmarshal([]byte(payload), &v))

	assert.Equal(t, "ven_42", v.VenueID)
	require.Len(t, v.TimeSlots, 2)
	assert.Equal(t, schedule.Monday, v.TimeSlots[0].Weekday)
	assert.Equal(t, schedule.Friday, v.TimeSlots[1].Weekday)
	require.Len(t, v.KitchenTimeSlots, 1)
	assert.Equal(t, 18, v.KitchenTimeSlots[0].StartHour)
}

func TestVenue_UnmarshalJSON_DropsMalformedEntries(t *testing.T) {
	payload := `{
		"venue_id": "ven_43",
		"venue_name": "Glitchy Bar",
		"hours": ["mon/9:0/17:0", "not-a-slot", "xyz/1:0/2:0"]
	}`

	var v Venue
	require.NoError(t, json.Unmarshal([]byte(payload), &v))

	// Raw entries are kept as-is, only the parsed form is filtered.
	assert.Len(t, v.Hours, 3)
	require.Len(t, v.TimeSlots, 1)
	assert.Equal(t, schedule.Monday, v.TimeSlots[0].Weekday)
}

func TestVenue_MarshalRoundTrip(t *testing.T) {
	payload := `{
		"venue_id": "ven_44",
		"venue_name": "Round Trip",
		"hours": ["sat/14:0/2:0"]
	}`

	var v Venue
	require.NoError(t, json.Unmarshal([]byte(payload), &v))

	// Storing and re-reading (as the Redis DAO does) rebuilds the
	// parsed slots from the raw hours strings.
	data, err := json.Marshal(&v)
	require.NoError(t, err)

	var again Venue
	require.NoError(t, json.Unmarshal(data, &again))
	require.Len(t, again.TimeSlots, 1)
	assert.Equal(t, v.TimeSlots[0], again.TimeSlots[0])
}
