package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/pointago/pointage-backend-go/internal/domain/statistics"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
)

type statisticsRepository struct {
	db *database.DB
}

func NewStatisticsRepository(db *database.DB) statistics.StatisticsRepository {
	return &statisticsRepository{db: db}
}

func statsWhere(filter statistics.StatsFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// CountByStatus implements statistics.StatisticsRepository.
// One consistent pass over the range; each row is read atomically, and no
// cross-record invariant exists, so writers are never blocked.
func (r *statisticsRepository) CountByStatus(ctx context.Context, filter statistics.StatsFilter) (statistics.Counts, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(filter)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status IN ('IN_PROGRESS', 'COMPLETED')) AS presences,
			COUNT(*) FILTER (WHERE a.status = 'ABSENT') AS absences,
			COUNT(*) FILTER (WHERE a.delay_minutes > 0) AS retards
		FROM attendance_records a
		` + where

	var c statistics.Counts
	if err := q.QueryRow(ctx, query, args...).Scan(&c.Presences, &c.Absences, &c.Retards); err != nil {
		return statistics.Counts{}, fmt.Errorf("failed to count records by status: %w", err)
	}

	return c, nil
}

// AvgHoursPerDay implements statistics.StatisticsRepository.
func (r *statisticsRepository) AvgHoursPerDay(ctx context.Context, filter statistics.StatsFilter) (float64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(filter)
	completed := "a.status = 'COMPLETED'"
	if where == "" {
		where = "WHERE " + completed
	} else {
		where += " AND " + completed
	}

	query := `
		SELECT COALESCE(AVG(a.total_hours), 0)
		FROM attendance_records a
		` + where

	var avg float64
	if err := q.QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average worked hours: %w", err)
	}

	return avg, nil
}

// CountLateJustified implements statistics.StatisticsRepository.
func (r *statisticsRepository) CountLateJustified(ctx context.Context, filter statistics.StatsFilter) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := statsWhere(filter)
	late := "a.delay_minutes > 0"
	if where == "" {
		where = "WHERE " + late
	} else {
		where += " AND " + late
	}

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE j.status = 'APPROUVEE') AS justified
		FROM attendance_records a
		LEFT JOIN justifications j ON j.record_id = a.id
		` + where

	var total, justified int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total, &justified); err != nil {
		return 0, 0, fmt.Errorf("failed to count justified lateness: %w", err)
	}

	return total, justified, nil
}
