package attendance

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for attendance operations.
// Every operation takes the resolved actor explicitly; the service, not the
// caller, enforces ownership and role preconditions.
type AttendanceService interface {
	// PunchIn records the actor's start-of-day punch and classifies it.
	PunchIn(ctx context.Context, actor user.Actor, req PunchRequest) (RecordResponse, error)

	// PunchOut closes the actor's open record for the day.
	PunchOut(ctx context.Context, actor user.Actor, req PunchRequest) (RecordResponse, error)

	// PunchFor records a punch for another employee: manual RH/DG
	// correction or device-originated intake.
	PunchFor(ctx context.Context, actor user.Actor, req ManualPunchRequest) (RecordResponse, error)

	// GetRecord retrieves a single record; employees see only their own.
	GetRecord(ctx context.Context, actor user.Actor, id string) (RecordResponse, error)

	// ListRecords retrieves records; employees are scoped to their own rows.
	ListRecords(ctx context.Context, actor user.Actor, filter RecordFilter) (ListRecordsResponse, error)

	// FinalizeAbsences marks no-show employees ABSENT for a past date (RH/DG).
	FinalizeAbsences(ctx context.Context, actor user.Actor, req FinalizeAbsencesRequest) (FinalizeAbsencesResponse, error)
}
