package calendar

import (
	"time"
)

// Calendar answers working-day questions for attendance-rate denominators.
// A working day is Monday through Saturday, excluding configured holidays.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a Calendar from holiday dates in YYYY-MM-DD form.
// Malformed entries are ignored; config validation rejects them upstream.
func New(holidays []string) *Calendar {
	m := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		if _, err := time.Parse("2006-01-02", h); err == nil {
			m[h] = struct{}{}
		}
	}
	return &Calendar{holidays: m}
}

// IsWorkingDay reports whether d counts toward attendance denominators.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	if d.Weekday() == time.Sunday {
		return false
	}
	_, holiday := c.holidays[d.Format("2006-01-02")]
	return !holiday
}

// WorkingDays counts working days in [from, to] inclusive.
// Returns 0 when to is before from.
func (c *Calendar) WorkingDays(from, to time.Time) int {
	from = Midnight(from)
	to = Midnight(to)
	if to.Before(from) {
		return 0
	}

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At combines the calendar day of date with a clock offset from midnight.
// Used to resolve a shift's expected clock-in on a concrete date.
func At(date time.Time, clock time.Duration) time.Time {
	return Midnight(date).Add(clock)
}
