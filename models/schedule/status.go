package schedule

import "time"

// StatusKind discriminates the Status variants.
type StatusKind int

const (
	KindClosed StatusKind = iota
	KindOpen
	KindClosesSoon
	KindOpensLater
)

func (k StatusKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClosesSoon:
		return "closes_soon"
	case KindOpensLater:
		return "opens_later"
	default:
		return "closed"
	}
}

// Status is the evaluated open/closed state of a venue at an instant.
// OpenedOn and ClosesAt are set for Open and ClosesSoon, OpensAt for
// OpensLater; the rest of the fields are zero.
type Status struct {
	Kind     StatusKind
	OpenedOn Weekday
	ClosesAt time.Time
	OpensAt  time.Time
}

// Open means the venue is open and not about to close.
func Open(openedOn Weekday, closesAt time.Time) Status {
	return Status{Kind: KindOpen, OpenedOn: openedOn, ClosesAt: closesAt}
}

// ClosesSoon means the venue is open but closing within
// ClosingSoonWindow.
func ClosesSoon(at time.Time, openedOn Weekday) Status {
	return Status{Kind: KindClosesSoon, OpenedOn: openedOn, ClosesAt: at}
}

// OpensLater means the venue is closed but opens within
// OpensLaterWindow.
func OpensLater(at time.Time) Status {
	return Status{Kind: KindOpensLater, OpensAt: at}
}

// Closed means no applicable schedule was found.
func Closed() Status {
	return Status{Kind: KindClosed}
}

// IsOpen reports whether guests can walk in right now.
func (s Status) IsOpen() bool {
	return s.Kind == KindOpen || s.Kind == KindClosesSoon
}

// IndicatorText is the short label rendered next to a venue.
func (s Status) IndicatorText() string {
	switch s.Kind {
	case KindOpen:
		return "Closes at " + s.ClosesAt.Format(clockFormat)
	case KindClosesSoon:
		return "Closing Soon!"
	case KindOpensLater:
		return "Opens at " + s.OpensAt.Format(clockFormat)
	default:
		return "Closed"
	}
}
