package biometric

import (
	"context"
	"errors"
	"fmt"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/biometric"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

type BiometricServiceImpl struct {
	biometric.LogRepository
	user.UserRepository
	attendanceService attendance.AttendanceService
}

func NewBiometricService(
	logRepository biometric.LogRepository,
	userRepository user.UserRepository,
	attendanceService attendance.AttendanceService,
) biometric.BiometricService {
	return &BiometricServiceImpl{
		LogRepository:     logRepository,
		UserRepository:    userRepository,
		attendanceService: attendanceService,
	}
}

// ReceivePunch implements biometric.BiometricService.
func (b *BiometricServiceImpl) ReceivePunch(ctx context.Context, req biometric.PunchEventRequest) (biometric.PunchEventResponse, error) {
	if err := req.Validate(); err != nil {
		return biometric.PunchEventResponse{}, err
	}

	employee, lookupErr := b.UserRepository.GetByBiometricID(ctx, req.BiometricID)

	log := biometric.Log{
		BiometricID: req.BiometricID,
		LogType:     biometric.LogType(req.LogType),
		Timestamp:   req.At(),
		DeviceID:    req.DeviceID,
	}
	if lookupErr == nil {
		log.EmployeeID = &employee.ID
		log.Matched = true
	}

	// The raw event is stored whatever happens next; the device feed has
	// to stay auditable even when the punch itself is rejected.
	log, err := b.LogRepository.Create(ctx, log)
	if err != nil {
		return biometric.PunchEventResponse{}, fmt.Errorf("failed to store biometric log: %w", err)
	}

	if lookupErr != nil {
		if errors.Is(lookupErr, user.ErrUnknownBiometricID) {
			return biometric.PunchEventResponse{LogID: log.ID}, lookupErr
		}
		return biometric.PunchEventResponse{}, fmt.Errorf("failed to resolve biometric id: %w", lookupErr)
	}

	punchType := "in"
	if log.LogType == biometric.LogTypeSortie {
		punchType = "out"
	}

	rec, err := b.attendanceService.PunchFor(ctx, user.Actor{ID: employee.ID, Role: employee.Role}, attendance.ManualPunchRequest{
		EmployeeID: employee.ID,
		PunchType:  punchType,
		Timestamp:  req.Timestamp,
	})
	if err != nil {
		return biometric.PunchEventResponse{LogID: log.ID}, err
	}

	return biometric.PunchEventResponse{
		LogID:        log.ID,
		EmployeeName: employee.FullName(),
		RecordID:     rec.ID,
		RecordStatus: rec.Status,
	}, nil
}

// ListLogs implements biometric.BiometricService.
func (b *BiometricServiceImpl) ListLogs(ctx context.Context, actor user.Actor, limit int) ([]biometric.LogResponse, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}

	employeeID := ""
	if !actor.Role.CanValidate() {
		employeeID = actor.ID
	}

	logs, err := b.LogRepository.List(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list biometric logs: %w", err)
	}

	responses := make([]biometric.LogResponse, 0, len(logs))
	for _, log := range logs {
		resp := biometric.LogResponse{
			ID:          log.ID,
			BiometricID: log.BiometricID,
			LogType:     string(log.LogType),
			Timestamp:   log.Timestamp.Format("2006-01-02 15:04:05"),
			DeviceID:    log.DeviceID,
			Matched:     log.Matched,
		}
		if log.EmployeeID != nil {
			resp.EmployeeID = *log.EmployeeID
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
