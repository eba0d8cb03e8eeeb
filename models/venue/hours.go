package venue

import (
	"time"

	"vs-server/models/schedule"
)

// StatusOn evaluates the venue's open/closed status at an instant.
// Total: absence of schedule data yields Closed, never an error.
//
// The search walks yesterday, today and tomorrow relative to `at` in
// that order, resolves each day's slot and takes the first day whose
// schedule has an opinion. An open answer is extended across the day
// boundary when the next calendar day's schedule opens at or before
// this one closes: back-to-back days read as one continuous open
// stretch, so a seam at 2am never shows as "closing soon".
func (v *Venue) StatusOn(at time.Time, cfg schedule.Config) schedule.Status {
	if cfg.AllVenuesAlwaysOpen {
		now := cfg.CurrentTime()
		return schedule.Open(schedule.WeekdayOf(now), now.Add(24*time.Hour))
	}

	window := []time.Time{at.AddDate(0, 0, -1), at, at.AddDate(0, 0, 1)}
	for _, day := range window {
		slot, ok := v.slotFor(schedule.WeekdayOf(day))
		if !ok {
			continue
		}

		sched := slot.ScheduleForDay(day)
		status, ok := sched.StatusAt(at)
		if !ok {
			continue
		}

		if status.IsOpen() {
			if next, ok := v.scheduleFor(day.AddDate(0, 0, 1)); ok && !next.Opening.After(sched.Closing) {
				return schedule.Open(status.OpenedOn, next.Closing)
			}
		}
		return status
	}

	return schedule.Closed()
}

// slotFor finds the venue's slot for a weekday. When the catalog
// erroneously carries several slots for one weekday the longest one
// wins, so duplicates cannot flip the answer with their list order.
func (v *Venue) slotFor(wd schedule.Weekday) (schedule.TimeSlot, bool) {
	return longestSlotFor(v.TimeSlots, wd)
}

// scheduleFor resolves the slot for the given day's weekday against
// that day.
func (v *Venue) scheduleFor(day time.Time) (schedule.TimeSchedule, bool) {
	slot, ok := v.slotFor(schedule.WeekdayOf(day))
	if !ok {
		return schedule.TimeSchedule{}, false
	}
	return slot.ScheduleForDay(day), true
}

// KitchenScheduleOn resolves the kitchen hours for one calendar day.
// Kitchen hours only feed the "Served from ..." display text; there
// is no multi-day search or merge for them.
func (v *Venue) KitchenScheduleOn(day time.Time) (schedule.TimeSchedule, bool) {
	slot, ok := longestSlotFor(v.KitchenTimeSlots, schedule.WeekdayOf(day))
	if !ok {
		return schedule.TimeSchedule{}, false
	}
	return slot.ScheduleForDay(day), true
}

// KitchenDisplay renders the kitchen hours label for a day, or ""
// when the kitchen is not serving that day.
func (v *Venue) KitchenDisplay(day time.Time) string {
	sched, ok := v.KitchenScheduleOn(day)
	if !ok {
		return ""
	}
	return "Served from " + sched.DisplayString()
}

// DayHours pairs a weekday with its rendered opening hours.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// WeeklyHoursDisplay renders the full week's hours for detail views,
// Sunday through Saturday, resolved within the week containing ref.
func (v *Venue) WeeklyHoursDisplay(ref time.Time) []DayHours {
	week := make([]DayHours, 0, 7)
	for wd := schedule.Sunday; wd <= schedule.Saturday; wd++ {
		entry := DayHours{Day: wd.String(), Hours: "Closed"}
		if slot, ok := v.slotFor(wd); ok {
			entry.Hours = slot.ScheduleForDay(wd.StartOfWeek(ref)).DisplayString()
		}
		week = append(week, entry)
	}
	return week
}

func longestSlotFor(slots []schedule.TimeSlot, wd schedule.Weekday) (schedule.TimeSlot, bool) {
	var best schedule.TimeSlot
	found := false
	for _, s := range slots {
		if s.Weekday != wd {
			continue
		}
		if !found || s.Duration() > best.Duration() {
			best = s
			found = true
		}
	}
	return best, found
}
