package schedule

import "time"

// clockFormat renders hours the way the apps display them: 12-hour
// clock, no zero-padded hour, AM/PM suffix.
const clockFormat = "3:04 PM"

// ClosingSoonWindow is how close to closing a venue reports
// "closing soon" instead of plain "open". Strictly less than: exactly
// one hour out still reads as open.
const ClosingSoonWindow = time.Hour

// OpensLaterWindow caps how far ahead a future opening is announced.
const OpensLaterWindow = 24 * time.Hour

// TimeSchedule is a TimeSlot resolved against one specific calendar
// day: a concrete opening/closing instant pair. Build one with
// TimeSlot.ScheduleForDay.
type TimeSchedule struct {
	Opening time.Time
	Closing time.Time
}

// Duration of the resolved span. Positive for any slot whose
// endpoints differ, overnight spans included.
func (s TimeSchedule) Duration() time.Duration {
	return s.Closing.Sub(s.Opening)
}

// DisplayString renders "6:00 PM - 2:00 AM" for detail views.
func (s TimeSchedule) DisplayString() string {
	return s.Opening.Format(clockFormat) + " - " + s.Closing.Format(clockFormat)
}

// StatusAt evaluates this single day's span against an instant. ok is
// false when the schedule has no opinion (the instant is past closing,
// or more than OpensLaterWindow before opening) and the caller should
// consult adjacent days. The closing boundary is inclusive.
func (s TimeSchedule) StatusAt(t time.Time) (Status, bool) {
	if !t.Before(s.Opening) && !t.After(s.Closing) {
		if s.Closing.Sub(t) < ClosingSoonWindow {
			return ClosesSoon(s.Closing, WeekdayOf(s.Opening)), true
		}
		return Open(WeekdayOf(s.Opening), s.Closing), true
	}
	if t.Before(s.Opening) && s.Opening.Sub(t) < OpensLaterWindow {
		return OpensLater(s.Opening), true
	}
	return Status{}, false
}
