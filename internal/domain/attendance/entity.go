package attendance

import (
	"time"
)

// Record is one employee's attendance fact for one calendar date.
// (EmployeeID, Date) is unique; re-classification updates derived fields in
// place and never duplicates the row.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	TimeIn         *time.Time
	TimeOut        *time.Time
	ExpectedTimeIn *time.Time
	Status         Status
	DelayMinutes   int
	TotalHours     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for list/detail responses
	EmployeeName        *string
	JustificationStatus *string
}

// JustificationEligible reports whether the record can carry a
// justification case: a finalized absence, or any day that started late.
func (r Record) JustificationEligible() bool {
	return r.Status == StatusAbsent || r.DelayMinutes > 0
}
