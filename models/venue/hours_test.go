package venue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vs-server/models/schedule"
)

// 2024-03-01 was a Friday.
func instant(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, time.UTC)
}

func venueWithHours(t *testing.T, hours ...string) *Venue {
	t.Helper()
	v := &Venue{VenueID: "v1", VenueName: "Test Venue"}
	for _, h := range hours {
		slot, ok := schedule.ParseTimeSlot(h)
		require.True(t, ok, "bad test slot %q", h)
		v.TimeSlots = append(v.TimeSlots, slot)
	}
	return v
}

func TestStatusOn_OpenDuringHours(t *testing.T) {
	v := venueWithHours(t, "fri/10:0/23:0")

	status := v.StatusOn(instant(1, 12, 0), schedule.Config{})
	assert.Equal(t, schedule.KindOpen, status.Kind)
	assert.Equal(t, schedule.Friday, status.OpenedOn)
	assert.Equal(t, instant(1, 23, 0), status.ClosesAt)
}

func TestStatusOn_OvernightSpanReachesBackToYesterday(t *testing.T) {
	v := venueWithHours(t, "fri/18:0/2:0")

	// Saturday 1am falls inside Friday's overnight span.
	status := v.StatusOn(instant(2, 1, 0), schedule.Config{})
	require.True(t, status.IsOpen())
	assert.Equal(t, schedule.Friday, status.OpenedOn)
	assert.Equal(t, instant(2, 2, 0), status.ClosesAt)
}

func TestStatusOn_SeamlessMidnightMerge(t *testing.T) {
	// Friday 18:00-02:00 continued by Saturday 02:00-04:00: one
	// continuous stretch ending Saturday 4am.
	v := venueWithHours(t, "fri/18:0/2:0", "sat/2:0/4:0")

	status := v.StatusOn(instant(1, 23, 50), schedule.Config{})
	assert.Equal(t, schedule.KindOpen, status.Kind)
	assert.Equal(t, schedule.Friday, status.OpenedOn)
	assert.Equal(t, instant(2, 4, 0), status.ClosesAt)

	// Inside the closing-soon window of Friday's own span the merge
	// still reports plain open, not closing soon.
	status = v.StatusOn(instant(2, 1, 30), schedule.Config{})
	assert.Equal(t, schedule.KindOpen, status.Kind)
	assert.Equal(t, instant(2, 4, 0), status.ClosesAt)
}

func TestStatusOn_NoMergeWithGap(t *testing.T) {
	// Saturday opens at 11am, well after Friday's 2am close: the
	// closing-soon signal stays.
	v := venueWithHours(t, "fri/18:0/2:0", "sat/11:0/23:0")

	status := v.StatusOn(instant(2, 1, 30), schedule.Config{})
	assert.Equal(t, schedule.KindClosesSoon, status.Kind)
	assert.Equal(t, instant(2, 2, 0), status.ClosesAt)
}

func TestStatusOn_OpensLater(t *testing.T) {
	v := venueWithHours(t, "sat/14:0/23:0")

	status := v.StatusOn(instant(1, 20, 0), schedule.Config{})
	assert.Equal(t, schedule.KindOpensLater, status.Kind)
	assert.Equal(t, instant(2, 14, 0), status.OpensAt)
}

func TestStatusOn_NoHoursAlwaysClosed(t *testing.T) {
	v := &Venue{VenueID: "empty"}

	for _, at := range []time.Time{instant(1, 0, 0), instant(2, 12, 30), instant(3, 23, 59)} {
		status := v.StatusOn(at, schedule.Config{})
		assert.Equal(t, schedule.KindClosed, status.Kind)
	}
}

func TestStatusOn_MondayVenueQueriedTuesday(t *testing.T) {
	v := venueWithHours(t, "mon/9:0/17:0")

	// 2024-03-05 is a Tuesday. Monday's span has fully elapsed and
	// the next Monday is beyond the lookahead: closed, even at the
	// exact hour the venue would open.
	tuesday := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	status := v.StatusOn(tuesday, schedule.Config{})
	assert.Equal(t, schedule.KindClosed, status.Kind)
}

func TestStatusOn_AlwaysOpenOverride(t *testing.T) {
	v := &Venue{VenueID: "empty"} // no hours at all

	// The override path reads the wall clock, not the queried instant.
	now := instant(2, 18, 30)
	cfg := schedule.Config{
		AllVenuesAlwaysOpen: true,
		Now:                 func() time.Time { return now },
	}

	status := v.StatusOn(instant(1, 3, 0), cfg)
	assert.Equal(t, schedule.KindOpen, status.Kind)
	assert.Equal(t, schedule.WeekdayOf(now), status.OpenedOn)
	assert.Equal(t, now.Add(24*time.Hour), status.ClosesAt)
}

func TestStatusOn_DuplicateWeekdaySlotsLongestWins(t *testing.T) {
	// Catalog data glitch: two Friday slots. The longer one decides,
	// regardless of list order.
	v := venueWithHours(t, "fri/10:0/12:0", "fri/10:0/23:0")

	status := v.StatusOn(instant(1, 14, 0), schedule.Config{})
	assert.Equal(t, schedule.KindOpen, status.Kind)
	assert.Equal(t, instant(1, 23, 0), status.ClosesAt)
}

func TestKitchenScheduleOn(t *testing.T) {
	v := venueWithHours(t, "fri/10:0/23:0")
	slot, ok := schedule.ParseTimeSlot("fri/18:0/22:0")
	require.True(t, ok)
	v.KitchenTimeSlots = []schedule.TimeSlot{slot}

	sched, ok := v.KitchenScheduleOn(instant(1, 12, 0))
	require.True(t, ok)
	assert.Equal(t, instant(1, 18, 0), sched.Opening)
	assert.Equal(t, "Served from 6:00 PM - 10:00 PM", v.KitchenDisplay(instant(1, 12, 0)))

	// No kitchen hours on Saturday.
	_, ok = v.KitchenScheduleOn(instant(2, 12, 0))
	assert.False(t, ok)
	assert.Equal(t, "", v.KitchenDisplay(instant(2, 12, 0)))
}

func TestWeeklyHoursDisplay(t *testing.T) {
	v := venueWithHours(t, "mon/9:0/17:0", "fri/18:0/2:0")

	week := v.WeeklyHoursDisplay(instant(1, 12, 0))
	require.Len(t, week, 7)
	assert.Equal(t, DayHours{Day: "Sunday", Hours: "Closed"}, week[0])
	assert.Equal(t, DayHours{Day: "Monday", Hours: "9:00 AM - 5:00 PM"}, week[1])
	assert.Equal(t, DayHours{Day: "Friday", Hours: "6:00 PM - 2:00 AM"}, week[5])
	assert.Equal(t, DayHours{Day: "Saturday", Hours: "Closed"}, week[6])
}
