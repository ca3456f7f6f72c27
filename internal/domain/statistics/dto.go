package statistics

import (
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// StatsFilter scopes an aggregation run. EmployeeID empty means all
// employees (RH/DG view).
type StatsFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != "" {
		if _, ok := validator.IsValidDate(f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be YYYY-MM-DD",
			})
		}
	}

	if f.DateTo != "" {
		if _, ok := validator.IsValidDate(f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Period struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Statistics is the aggregate over classified records in a period.
// AttendanceRate and JustifiedLateRatio are derived at read time and report
// 0 when their denominators are empty.
type Statistics struct {
	TotalPresences     int64   `json:"total_presences"`
	TotalAbsences      int64   `json:"total_absences"`
	TotalRetards       int64   `json:"total_retards"`
	AvgHoursPerDay     float64 `json:"avg_hours_per_day"`
	WorkingDays        int     `json:"working_days"`
	AttendanceRate     float64 `json:"attendance_rate"`
	JustifiedLateRatio float64 `json:"justified_late_ratio"`
}

type StatisticsResponse struct {
	Period     Period     `json:"period"`
	Statistics Statistics `json:"statistics"`
}
