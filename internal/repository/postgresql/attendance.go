package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.time_in, a.time_out, a.expected_time_in,
	a.status, a.delay_minutes, a.total_hours, a.created_at, a.updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.ExpectedTimeIn,
		&rec.Status, &rec.DelayMinutes, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// isUniqueViolation reports a duplicate-key insert (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, time_in, time_out, expected_time_in,
			status, delay_minutes, total_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.TimeIn,
		rec.TimeOut,
		rec.ExpectedTimeIn,
		rec.Status,
		rec.DelayMinutes,
		rec.TotalHours,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			// Unique (employee_id, date): the concurrent loser lands here.
			return attendance.Record{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			u.first_name || ' ' || u.last_name AS employee_name,
			j.status AS justification_status
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.employee_id
		LEFT JOIN justifications j ON j.record_id = a.id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.ExpectedTimeIn,
		&rec.Status, &rec.DelayMinutes, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.JustificationStatus,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this date yet
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// CompletePunchOut implements attendance.AttendanceRepository.
// The status predicate is the compare-and-set: a record that has already
// completed (or never started) matches zero rows.
func (a *attendanceRepository) CompletePunchOut(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET time_out = $1, status = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $4
		  AND status IN ('IN_PROGRESS', 'LATE')
	`

	tag, err := q.Exec(ctx, query, rec.TimeOut, rec.Status, rec.TotalHours, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to complete punch-out: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyPunchedOut
	}

	return nil
}

// CompletePunchIn implements attendance.AttendanceRepository.
// Same compare-and-set shape as CompletePunchOut: only a row still finalized
// as ABSENT matches, so a concurrent punch-in loses cleanly.
func (a *attendanceRepository) CompletePunchIn(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET time_in = $1, expected_time_in = $2, status = $3,
			delay_minutes = $4, updated_at = NOW()
		WHERE id = $5
		  AND status = 'ABSENT'
	`

	tag, err := q.Exec(ctx, query,
		rec.TimeIn, rec.ExpectedTimeIn, rec.Status, rec.DelayMinutes, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete punch-in: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyPunchedIn
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != "" {
		addCondition("a.employee_id = $%d", filter.EmployeeID)
	}
	if filter.DateFrom != "" {
		addCondition("a.date >= $%d", filter.DateFrom)
	}
	if filter.DateTo != "" {
		addCondition("a.date <= $%d", filter.DateTo)
	}
	if filter.Status != "" {
		addCondition("a.status = $%d", filter.Status)
	}
	if filter.OnlyLate {
		conditions = append(conditions, "a.delay_minutes > 0")
	}
	if filter.JustificationStatus != "" {
		if filter.JustificationStatus == "NONE" {
			conditions = append(conditions, "j.status IS NULL")
		} else {
			addCondition("j.status = $%d", filter.JustificationStatus)
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN justifications j ON j.record_id = a.id
		` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	listQuery := `
		SELECT ` + attendanceColumns + `,
			u.first_name || ' ' || u.last_name AS employee_name,
			j.status AS justification_status
		FROM attendance_records a
		LEFT JOIN users u ON u.id = a.employee_id
		LEFT JOIN justifications j ON j.record_id = a.id
		` + where + `
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.ExpectedTimeIn,
			&rec.Status, &rec.DelayMinutes, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.JustificationStatus,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}

// CreateAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateAbsent(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status, delay_minutes, total_hours)
		VALUES ($1, $2, 'ABSENT', 0, 0)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to create absent record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
