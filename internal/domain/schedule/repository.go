package schedule

import (
	"context"
	"time"
)

// ShiftScheduleRepository resolves and manages weekday shift schedules.
type ShiftScheduleRepository interface {
	// GetForWeekday returns nil when the employee has no shift configured
	// for that weekday: the classifier treats that as a configuration
	// error, never as "not late".
	GetForWeekday(ctx context.Context, employeeID string, weekday time.Weekday) (*ShiftSchedule, error)

	// ListByEmployee returns the employee's full week.
	ListByEmployee(ctx context.Context, employeeID string) ([]ShiftSchedule, error)

	// Upsert creates or replaces the shift for (employee, weekday).
	Upsert(ctx context.Context, s ShiftSchedule) (ShiftSchedule, error)

	// Delete removes the shift for (employee, weekday).
	Delete(ctx context.Context, employeeID string, weekday time.Weekday) error
}
