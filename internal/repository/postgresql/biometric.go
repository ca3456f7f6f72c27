package postgresql

import (
	"context"
	"fmt"

	"github.com/pointago/pointage-backend-go/internal/domain/biometric"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
)

type biometricLogRepository struct {
	db *database.DB
}

func NewBiometricLogRepository(db *database.DB) biometric.LogRepository {
	return &biometricLogRepository{db: db}
}

// Create implements biometric.LogRepository.
func (r *biometricLogRepository) Create(ctx context.Context, l biometric.Log) (biometric.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO biometric_logs (biometric_id, employee_id, log_type, event_time, device_id, matched)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		l.BiometricID, l.EmployeeID, l.LogType, l.Timestamp, l.DeviceID, l.Matched,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return biometric.Log{}, fmt.Errorf("failed to create biometric log: %w", err)
	}

	return l, nil
}

// List implements biometric.LogRepository.
func (r *biometricLogRepository) List(ctx context.Context, employeeID string, limit int) ([]biometric.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, biometric_id, employee_id, log_type, event_time, device_id, matched, created_at
		FROM biometric_logs
	`
	var args []interface{}
	if employeeID != "" {
		query += ` WHERE employee_id = $1 ORDER BY event_time DESC LIMIT $2`
		args = []interface{}{employeeID, limit}
	} else {
		query += ` ORDER BY event_time DESC LIMIT $1`
		args = []interface{}{limit}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list biometric logs: %w", err)
	}
	defer rows.Close()

	var logs []biometric.Log
	for rows.Next() {
		var l biometric.Log
		if err := rows.Scan(&l.ID, &l.BiometricID, &l.EmployeeID, &l.LogType, &l.Timestamp, &l.DeviceID, &l.Matched, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan biometric log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate biometric logs: %w", err)
	}

	return logs, nil
}
