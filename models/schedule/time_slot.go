package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is one weekly-recurring opening interval, parsed from the
// compact "<wd>/<H>:<M>/<H>:<M>" form used by the venue catalog, e.g.
// "mon/9:0/23:30" or "fri/18:0/2:0" for an overnight span.
type TimeSlot struct {
	Weekday     Weekday
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// ParseTimeSlot parses a serialized slot. ok is false when the string
// has fewer than 3 "/"-fields, an unknown weekday code, or a time
// field whose hour does not parse. Fields past the third are ignored.
func ParseTimeSlot(s string) (TimeSlot, bool) {
	parts := strings.Split(s, "/")
	if len(parts) < 3 {
		return TimeSlot{}, false
	}

	weekday, ok := WeekdayFromCode(parts[0])
	if !ok {
		return TimeSlot{}, false
	}

	startHour, startMinute, ok := parseClock(parts[1])
	if !ok {
		return TimeSlot{}, false
	}
	endHour, endMinute, ok := parseClock(parts[2])
	if !ok {
		return TimeSlot{}, false
	}

	return TimeSlot{
		Weekday:     weekday,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
	}, true
}

// parseClock reads "H:M" or a bare "H" (minute defaults to 0).
// Out-of-range values are normalized: hours outside [0,23] collapse
// to 0, minutes clamp into [0,59].
func parseClock(s string) (hour, minute int, ok bool) {
	fields := strings.SplitN(s, ":", 2)

	hour, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, false
	}
	if len(fields) == 2 {
		minute, err = strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return 0, 0, false
		}
	}

	if hour < 0 || hour >= 24 {
		hour = 0
	}
	if minute < 0 {
		minute = 0
	} else if minute > 59 {
		minute = 59
	}
	return hour, minute, true
}

// String serializes back to the catalog form. Parsing the result
// yields an equal slot.
func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s/%d:%d/%d:%d",
		ts.Weekday.Code(), ts.StartHour, ts.StartMinute, ts.EndHour, ts.EndMinute)
}

// ScheduleForDay resolves the slot against one calendar day into
// concrete opening/closing instants. Total: always succeeds. An end
// time-of-day earlier than the start rolls closing to the next day.
func (ts TimeSlot) ScheduleForDay(day time.Time) TimeSchedule {
	y, m, d := day.Date()
	loc := day.Location()

	opening := time.Date(y, m, d, ts.StartHour, ts.StartMinute, 0, 0, loc)
	closing := time.Date(y, m, d, ts.EndHour, ts.EndMinute, 0, 0, loc)
	if ts.endOfDayMinutes() < ts.startOfDayMinutes() {
		closing = closing.AddDate(0, 0, 1)
	}

	return TimeSchedule{Opening: opening, Closing: closing}
}

// Duration is the slot length, honoring the overnight rule.
func (ts TimeSlot) Duration() time.Duration {
	start := ts.startOfDayMinutes()
	end := ts.endOfDayMinutes()
	if end < start {
		end += 24 * 60
	}
	return time.Duration(end-start) * time.Minute
}

func (ts TimeSlot) startOfDayMinutes() int {
	return ts.StartHour*60 + ts.StartMinute
}

func (ts TimeSlot) endOfDayMinutes() int {
	return ts.EndHour*60 + ts.EndMinute
}
