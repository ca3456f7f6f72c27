package justification

import "time"

type Status string

const (
	// StatusNone is never stored: a case row exists only once a
	// justification has been submitted. Records without a case report NONE.
	StatusNone      Status = "NONE"
	StatusEnAttente Status = "EN_ATTENTE"
	StatusApprouvee Status = "APPROUVEE"
	StatusRefusee   Status = "REFUSEE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusEnAttente, StatusApprouvee, StatusRefusee:
		return true
	}
	return false
}

// Decided reports whether the case has reached a terminal decision.
func (s Status) Decided() bool {
	return s == StatusApprouvee || s == StatusRefusee
}

// StatusInfo mirrors the attendance status table: one canonical
// label/severity mapping for all presentation surfaces.
type StatusInfo struct {
	Label    string
	Severity string
}

var statusTable = map[Status]StatusInfo{
	StatusNone:      {Label: "Non justifié", Severity: "secondary"},
	StatusEnAttente: {Label: "En attente", Severity: "warning"},
	StatusApprouvee: {Label: "Approuvée", Severity: "success"},
	StatusRefusee:   {Label: "Refusée", Severity: "danger"},
}

func (s Status) Info() StatusInfo {
	if info, ok := statusTable[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Severity: "secondary"}
}

// Case is the justification attached to one eligible attendance record.
// It is mutated in place on resubmission and decision, never deleted, so the
// row doubles as the audit trail for the record.
type Case struct {
	ID             string
	RecordID       string
	EmployeeID     string
	Text           string
	AttachmentPath *string
	Status         Status
	SubmittedAt    time.Time
	DecidedBy      *string
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for list/detail responses
	EmployeeName  *string
	RecordDate    *time.Time
	RecordStatus  *string
	DelayMinutes  *int
	DeciderName   *string
	AttachmentURL *string
}
