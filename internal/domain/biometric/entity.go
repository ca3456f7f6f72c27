package biometric

import "time"

type LogType string

const (
	LogTypeEntree LogType = "ENTREE"
	LogTypeSortie LogType = "SORTIE"
)

// Log is one raw event from a punch-capture device. Every event is stored,
// matched or not, before it drives the classifier; the device integration
// can then be audited independently of the attendance facts.
type Log struct {
	ID          string
	BiometricID string
	EmployeeID  *string
	LogType     LogType
	Timestamp   time.Time
	DeviceID    string
	Matched     bool
	CreatedAt   time.Time
}
