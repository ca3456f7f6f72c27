package attendance

import (
	"time"

	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchRequest is a self-service punch. Timestamp is optional; when empty
// the server clock is used. Device and manual punches always supply one.
type PunchRequest struct {
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At resolves the effective punch time.
func (r *PunchRequest) At(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

// ManualPunchRequest lets RH/DG record a punch on behalf of an employee,
// for corrections or device outages.
type ManualPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	PunchType  string `json:"punch_type"` // "in" or "out"
	Timestamp  string `json:"timestamp,omitempty"`
}

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.PunchType != "in" && r.PunchType != "out" {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_type",
			Message: "punch_type must be 'in' or 'out'",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At resolves the effective punch time.
func (r *ManualPunchRequest) At(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

// RecordFilter drives the list endpoints. All fields are caller-supplied
// query parameters; the engine keeps no filter state between calls.
type RecordFilter struct {
	EmployeeID          string
	DateFrom            string
	DateTo              string
	Status              string
	OnlyLate            bool
	JustificationStatus string
	Page                int
	Limit               int
}

func (f *RecordFilter) Validate() error {
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

	if f.Status != "" && !Status(f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of ABSENT, LATE, IN_PROGRESS, COMPLETED",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// FinalizeAbsencesRequest closes out a past date: every active employee
// without a record gets an ABSENT one. Date defaults to yesterday.
type FinalizeAbsencesRequest struct {
	Date string `json:"date,omitempty"`
}

func (r *FinalizeAbsencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FinalizeAbsencesResponse struct {
	Date            string `json:"date"`
	AbsencesCreated int    `json:"absences_created"`
}

type RecordResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	Date                string  `json:"date"`
	TimeIn              *string `json:"time_in,omitempty"`
	TimeOut             *string `json:"time_out,omitempty"`
	ExpectedTimeIn      *string `json:"expected_time_in,omitempty"`
	Status              string  `json:"status"`
	StatusLabel         string  `json:"status_label"`
	StatusSeverity      string  `json:"status_severity"`
	DelayMinutes        int     `json:"delay_minutes"`
	TotalHours          float64 `json:"total_hours"`
	JustificationStatus string  `json:"justification_status"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// NewRecordResponse maps a record to its API shape, resolving labels from
// the canonical status table.
func NewRecordResponse(rec Record) RecordResponse {
	info := rec.Status.Info()

	justification := "NONE"
	if rec.JustificationStatus != nil && *rec.JustificationStatus != "" {
		justification = *rec.JustificationStatus
	}

	resp := RecordResponse{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		Date:                rec.Date.Format("2006-01-02"),
		TimeIn:              timePtrToString(rec.TimeIn),
		TimeOut:             timePtrToString(rec.TimeOut),
		ExpectedTimeIn:      timePtrToString(rec.ExpectedTimeIn),
		Status:              string(rec.Status),
		StatusLabel:         info.Label,
		StatusSeverity:      info.Severity,
		DelayMinutes:        rec.DelayMinutes,
		TotalHours:          rec.TotalHours,
		JustificationStatus: justification,
	}

	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}

	return resp
}
