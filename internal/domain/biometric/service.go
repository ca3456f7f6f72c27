package biometric

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// BiometricService bridges device events into the attendance classifier.
type BiometricService interface {
	// ReceivePunch stores the raw event, resolves its employee and drives
	// the punch-in/punch-out transition. Unknown biometric ids are still
	// stored (unmatched) before the error is surfaced.
	ReceivePunch(ctx context.Context, req PunchEventRequest) (PunchEventResponse, error)

	// ListLogs returns recent device events; employees see only their own.
	ListLogs(ctx context.Context, actor user.Actor, limit int) ([]LogResponse, error)
}
