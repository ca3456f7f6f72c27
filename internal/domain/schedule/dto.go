package schedule

import (
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT SCHEDULE DTOs
// ========================================

type UpsertShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Weekday    int    `json:"weekday"` // 0 = Sunday ... 6 = Saturday
	StartsAt   string `json:"starts_at"` // "HH:MM"
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Weekday < 0 || r.Weekday > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekday",
			Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if _, ok := validator.IsValidClock(r.StartsAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at must be HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Weekday    int    `json:"weekday"`
	StartsAt   string `json:"starts_at"`
}

type ListShiftsResponse struct {
	EmployeeID string          `json:"employee_id"`
	Shifts     []ShiftResponse `json:"shifts"`
}
