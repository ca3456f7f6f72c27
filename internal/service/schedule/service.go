package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/pointago/pointage-backend-go/internal/domain/schedule"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

type ShiftScheduleServiceImpl struct {
	schedule.ShiftScheduleRepository
	user.UserRepository
}

func NewShiftScheduleService(
	scheduleRepository schedule.ShiftScheduleRepository,
	userRepository user.UserRepository,
) schedule.ShiftScheduleService {
	return &ShiftScheduleServiceImpl{
		ShiftScheduleRepository: scheduleRepository,
		UserRepository:          userRepository,
	}
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func toResponse(s schedule.ShiftSchedule) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Weekday:    int(s.Weekday),
		StartsAt:   formatClock(s.StartsAt),
	}
}

// UpsertShift implements schedule.ShiftScheduleService.
func (s *ShiftScheduleServiceImpl) UpsertShift(ctx context.Context, actor user.Actor, req schedule.UpsertShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	if !actor.Role.CanValidate() {
		return schedule.ShiftResponse{}, user.ErrRHAccessRequired
	}

	if _, err := s.UserRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftResponse{}, err
	}

	startsAt, _ := validator.IsValidClock(req.StartsAt)

	saved, err := s.ShiftScheduleRepository.Upsert(ctx, schedule.ShiftSchedule{
		EmployeeID: req.EmployeeID,
		Weekday:    time.Weekday(req.Weekday),
		StartsAt:   startsAt,
	})
	if err != nil {
		return schedule.ShiftResponse{}, fmt.Errorf("failed to upsert shift schedule: %w", err)
	}

	return toResponse(saved), nil
}

// DeleteShift implements schedule.ShiftScheduleService.
func (s *ShiftScheduleServiceImpl) DeleteShift(ctx context.Context, actor user.Actor, employeeID string, weekday int) error {
	if !actor.Role.CanValidate() {
		return user.ErrRHAccessRequired
	}

	if weekday < 0 || weekday > 6 {
		return validator.ValidationErrors{
			{Field: "weekday", Message: "weekday must be between 0 (Sunday) and 6 (Saturday)"},
		}
	}

	return s.ShiftScheduleRepository.Delete(ctx, employeeID, time.Weekday(weekday))
}

// ListShifts implements schedule.ShiftScheduleService.
func (s *ShiftScheduleServiceImpl) ListShifts(ctx context.Context, actor user.Actor, employeeID string) (schedule.ListShiftsResponse, error) {
	if employeeID == "" {
		employeeID = actor.ID
	}

	if !actor.Role.CanValidate() && employeeID != actor.ID {
		return schedule.ListShiftsResponse{}, user.ErrRHAccessRequired
	}

	shifts, err := s.ShiftScheduleRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return schedule.ListShiftsResponse{}, fmt.Errorf("failed to list shift schedules: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, toResponse(shift))
	}

	return schedule.ListShiftsResponse{
		EmployeeID: employeeID,
		Shifts:     responses,
	}, nil
}
