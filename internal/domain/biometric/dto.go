package biometric

import (
	"time"

	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// PunchEventRequest is the payload sent by a punch-capture device.
type PunchEventRequest struct {
	BiometricID string `json:"biometric_id"`
	LogType     string `json:"log_type"` // ENTREE or SORTIE
	Timestamp   string `json:"timestamp"`
	DeviceID    string `json:"device_id"`
}

func (r *PunchEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id is required",
		})
	}

	if r.LogType != string(LogTypeEntree) && r.LogType != string(LogTypeSortie) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_type",
			Message: "log_type must be ENTREE or SORTIE",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an RFC3339 datetime",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At returns the parsed event timestamp. Validate must have passed.
func (r *PunchEventRequest) At() time.Time {
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t
}

type PunchEventResponse struct {
	LogID        string `json:"log_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	RecordID     string `json:"record_id,omitempty"`
	RecordStatus string `json:"record_status,omitempty"`
}

type LogResponse struct {
	ID           string `json:"id"`
	BiometricID  string `json:"biometric_id"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	LogType      string `json:"log_type"`
	Timestamp    string `json:"timestamp"`
	DeviceID     string `json:"device_id"`
	Matched      bool   `json:"matched"`
}
