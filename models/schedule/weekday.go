package schedule

import "time"

// Weekday is a day of the week using the 1-based, Sunday-first
// calendar component convention: Sunday=1 ... Saturday=7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// weekdayCodes maps the 3-letter lowercase codes used in the venue
// hours payload to their weekday.
var weekdayCodes = map[string]Weekday{
	"sun": Sunday,
	"mon": Monday,
	"tue": Tuesday,
	"wed": Wednesday,
	"thu": Thursday,
	"fri": Friday,
	"sat": Saturday,
}

var weekdayNames = [...]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// WeekdayFromCode resolves a payload code like "mon". The match is
// exact: 3 letters, lowercase.
func WeekdayFromCode(code string) (Weekday, bool) {
	w, ok := weekdayCodes[code]
	return w, ok
}

// WeekdayOf returns the weekday of an instant. The instant's location
// decides which calendar day it falls on.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// CalendarComponent returns the 1-based Sunday-first number.
func (w Weekday) CalendarComponent() int {
	return int(w)
}

// Code returns the 3-letter payload code, or "" for an out-of-range value.
func (w Weekday) Code() string {
	switch w {
	case Sunday:
		return "sun"
	case Monday:
		return "mon"
	case Tuesday:
		return "tue"
	case Wednesday:
		return "wed"
	case Thursday:
		return "thu"
	case Friday:
		return "fri"
	case Saturday:
		return "sat"
	}
	return ""
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// StartOfWeek returns midnight of the day carrying this weekday in
// the week containing t. Weeks start on Sunday here no matter what
// the locale says, matching the convention the hours payload uses.
func (w Weekday) StartOfWeek(containing time.Time) time.Time {
	y, m, d := containing.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, containing.Location())
	sunday := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	return sunday.AddDate(0, 0, int(w)-1)
}
