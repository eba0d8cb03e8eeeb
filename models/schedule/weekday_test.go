package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekday_CodesBidirectional(t *testing.T) {
	for wd := Sunday; wd <= Saturday; wd++ {
		parsed, ok := WeekdayFromCode(wd.Code())
		assert.True(t, ok)
		assert.Equal(t, wd, parsed)
	}

	_, ok := WeekdayFromCode("Mon")
	assert.False(t, ok)
}

func TestWeekday_CalendarComponent(t *testing.T) {
	assert.Equal(t, 1, Sunday.CalendarComponent())
	assert.Equal(t, 2, Monday.CalendarComponent())
	assert.Equal(t, 7, Saturday.CalendarComponent())
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Friday, WeekdayOf(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
}

func TestWeekday_StartOfWeek(t *testing.T) {
	// Saturday afternoon, 2024-03-02.
	saturday := time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC)

	// Weeks are Sunday-first, so the containing week runs
	// 2024-02-25 (Sun) through 2024-03-02 (Sat).
	assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), Sunday.StartOfWeek(saturday))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Friday.StartOfWeek(saturday))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Saturday.StartOfWeek(saturday))
}
