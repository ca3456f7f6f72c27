package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pointago/pointage-backend-go/internal/domain/schedule"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
)

type shiftScheduleRepository struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) schedule.ShiftScheduleRepository {
	return &shiftScheduleRepository{db: db}
}

// starts_at is stored as seconds from midnight.

// GetForWeekday implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepository) GetForWeekday(ctx context.Context, employeeID string, weekday time.Weekday) (*schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, weekday, starts_at_seconds, created_at, updated_at
		FROM shift_schedules
		WHERE employee_id = $1
		  AND weekday = $2
	`

	var s schedule.ShiftSchedule
	var weekdayInt int
	var startsAtSeconds int64
	err := q.QueryRow(ctx, query, employeeID, int(weekday)).Scan(
		&s.ID, &s.EmployeeID, &weekdayInt, &startsAtSeconds, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no shift configured for this weekday
		}
		return nil, fmt.Errorf("failed to get shift schedule: %w", err)
	}

	s.Weekday = time.Weekday(weekdayInt)
	s.StartsAt = time.Duration(startsAtSeconds) * time.Second
	return &s, nil
}

// ListByEmployee implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, weekday, starts_at_seconds, created_at, updated_at
		FROM shift_schedules
		WHERE employee_id = $1
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift schedules: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.ShiftSchedule
	for rows.Next() {
		var s schedule.ShiftSchedule
		var weekdayInt int
		var startsAtSeconds int64
		if err := rows.Scan(&s.ID, &s.EmployeeID, &weekdayInt, &startsAtSeconds, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift schedule: %w", err)
		}
		s.Weekday = time.Weekday(weekdayInt)
		s.StartsAt = time.Duration(startsAtSeconds) * time.Second
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift schedules: %w", err)
	}

	return shifts, nil
}

// Upsert implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepository) Upsert(ctx context.Context, s schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_schedules (employee_id, weekday, starts_at_seconds)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, weekday)
		DO UPDATE SET starts_at_seconds = EXCLUDED.starts_at_seconds, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.EmployeeID, int(s.Weekday), int64(s.StartsAt.Seconds())).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.ShiftSchedule{}, fmt.Errorf("failed to upsert shift schedule: %w", err)
	}

	return s, nil
}

// Delete implements schedule.ShiftScheduleRepository.
func (r *shiftScheduleRepository) Delete(ctx context.Context, employeeID string, weekday time.Weekday) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shift_schedules WHERE employee_id = $1 AND weekday = $2`

	tag, err := q.Exec(ctx, query, employeeID, int(weekday))
	if err != nil {
		return fmt.Errorf("failed to delete shift schedule: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}
