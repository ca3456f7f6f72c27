package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays_ExcludesSundays(t *testing.T) {
	t.Parallel()
	c := New(nil)

	// 2026-03-02 is a Monday; Mon..Sun is 6 working days.
	got := c.WorkingDays(date(2026, time.March, 2), date(2026, time.March, 8))
	assert.Equal(t, 6, got)
}

func TestWorkingDays_SaturdayCounts(t *testing.T) {
	t.Parallel()
	c := New(nil)

	// 2026-03-07 is a Saturday.
	assert.True(t, c.IsWorkingDay(date(2026, time.March, 7)))
	assert.Equal(t, 1, c.WorkingDays(date(2026, time.March, 7), date(2026, time.March, 7)))
}

func TestWorkingDays_ExcludesHolidays(t *testing.T) {
	t.Parallel()
	c := New([]string{"2026-03-03", "2026-03-04"})

	got := c.WorkingDays(date(2026, time.March, 2), date(2026, time.March, 8))
	assert.Equal(t, 4, got)
}

func TestWorkingDays_EmptyRange(t *testing.T) {
	t.Parallel()
	c := New(nil)

	assert.Equal(t, 0, c.WorkingDays(date(2026, time.March, 8), date(2026, time.March, 2)))
}

func TestWorkingDays_HolidayOnSundayNotDoubleCounted(t *testing.T) {
	t.Parallel()
	c := New([]string{"2026-03-08"}) // a Sunday

	got := c.WorkingDays(date(2026, time.March, 2), date(2026, time.March, 8))
	assert.Equal(t, 6, got)
}

func TestAt(t *testing.T) {
	t.Parallel()

	got := At(time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC), 8*time.Hour)
	assert.Equal(t, time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC), got)
}
