package attendance

type Status string

const (
	StatusAbsent     Status = "ABSENT"
	StatusLate       Status = "LATE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAbsent, StatusLate, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// StatusInfo is the canonical label/severity pair for a status. Every
// presentation surface (API responses, exports) reads this table instead of
// keeping its own switch.
type StatusInfo struct {
	Label    string
	Severity string
}

var statusTable = map[Status]StatusInfo{
	StatusAbsent:     {Label: "Absent", Severity: "danger"},
	StatusLate:       {Label: "En retard", Severity: "warning"},
	StatusInProgress: {Label: "En cours", Severity: "info"},
	StatusCompleted:  {Label: "Terminé", Severity: "success"},
}

func (s Status) Info() StatusInfo {
	if info, ok := statusTable[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Severity: "secondary"}
}
