package schedule

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// ShiftScheduleService manages weekday shift schedules (RH/DG mutations;
// employees may read their own week).
type ShiftScheduleService interface {
	UpsertShift(ctx context.Context, actor user.Actor, req UpsertShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, actor user.Actor, employeeID string, weekday int) error
	ListShifts(ctx context.Context, actor user.Actor, employeeID string) (ListShiftsResponse, error)
}
