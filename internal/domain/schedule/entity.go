package schedule

import "time"

// ShiftSchedule is one employee's expected clock-in for one weekday.
// StartsAt is a clock offset from midnight (e.g. 8h for 08:00); the
// classifier resolves it against the punch date.
type ShiftSchedule struct {
	ID         string
	EmployeeID string
	Weekday    time.Weekday
	StartsAt   time.Duration
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
