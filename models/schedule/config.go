package schedule

import "time"

// Config carries the evaluation switches. It is threaded into every
// status query explicitly so the evaluator stays a pure function of
// its inputs; nothing here is process-wide state.
type Config struct {
	// AllVenuesAlwaysOpen short-circuits every status query to an
	// open answer closing 24 hours from the wall clock. Development
	// switch for demoing check-in flows outside business hours.
	AllVenuesAlwaysOpen bool

	// Now supplies the wall clock for the always-open path. nil means
	// time.Now.
	Now func() time.Time
}

// CurrentTime returns the configured wall clock reading.
func (c Config) CurrentTime() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
