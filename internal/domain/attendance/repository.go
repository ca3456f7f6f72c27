package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
//
// Per-record mutations are serialized by the store: Create relies on the
// unique (employee_id, date) key, and CompletePunchIn/CompletePunchOut are
// conditional updates on status. A concurrent loser gets
// ErrAlreadyPunchedIn / ErrAlreadyPunchedOut, never a half-applied row.
type AttendanceRepository interface {
	// Create inserts a freshly classified record. A duplicate
	// (employee_id, date) insert returns ErrAlreadyPunchedIn.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// CompletePunchIn applies a punch-in to a row finalized as ABSENT,
	// reopening it as LATE or IN_PROGRESS. The status predicate makes a
	// concurrent punch-in lose with ErrAlreadyPunchedIn.
	CompletePunchIn(ctx context.Context, rec Record) error

	// CompletePunchOut applies the punch-out transition only while the
	// record is still IN_PROGRESS or LATE; otherwise ErrAlreadyPunchedOut.
	CompletePunchOut(ctx context.Context, rec Record) error

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// CreateAbsent inserts an ABSENT record for the date unless any record
	// already exists. Reports whether a row was created.
	CreateAbsent(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
