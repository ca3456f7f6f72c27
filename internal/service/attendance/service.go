package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pointago/pointage-backend-go/internal/config"
	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/schedule"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/calendar"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	schedule.ShiftScheduleRepository
	user.UserRepository
	calendar *calendar.Calendar
	rules    config.AttendanceConfig
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	scheduleRepository schedule.ShiftScheduleRepository,
	userRepository user.UserRepository,
	cal *calendar.Calendar,
	rules config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                      db,
		AttendanceRepository:    attendanceRepository,
		ShiftScheduleRepository: scheduleRepository,
		UserRepository:          userRepository,
		calendar:                cal,
		rules:                   rules,
	}
}

// expectedTimeIn resolves the employee's scheduled clock-in for the punch
// date. A missing shift is a configuration error, never a free pass.
func (a *AttendanceServiceImpl) expectedTimeIn(ctx context.Context, employeeID string, at time.Time) (time.Time, error) {
	shift, err := a.ShiftScheduleRepository.GetForWeekday(ctx, employeeID, at.Weekday())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve shift schedule: %w", err)
	}
	if shift == nil {
		return time.Time{}, attendance.ErrNoShiftSchedule
	}
	return calendar.At(at, shift.StartsAt), nil
}

// punchIn classifies and stores a first punch of the day. The unique
// (employee_id, date) key makes a concurrent duplicate lose cleanly.
//
// A row finalized as ABSENT is not a punch: a late-syncing device event or
// an RH correction reopens it as LATE or IN_PROGRESS through a
// status-guarded update.
func (a *AttendanceServiceImpl) punchIn(ctx context.Context, employeeID string, at time.Time) (attendance.RecordResponse, error) {
	expectedIn, err := a.expectedTimeIn(ctx, employeeID, at)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	cls := attendance.Classify(&at, nil, expectedIn, a.rules.GracePeriod)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, calendar.Midnight(at))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing != nil {
		if existing.TimeIn != nil {
			return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedIn
		}

		existing.TimeIn = &at
		existing.ExpectedTimeIn = &expectedIn
		existing.Status = cls.Status
		existing.DelayMinutes = cls.DelayMinutes

		if err := a.AttendanceRepository.CompletePunchIn(ctx, *existing); err != nil {
			return attendance.RecordResponse{}, err
		}
		return attendance.NewRecordResponse(*existing), nil
	}

	rec, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID:     employeeID,
		Date:           calendar.Midnight(at),
		TimeIn:         &at,
		ExpectedTimeIn: &expectedIn,
		Status:         cls.Status,
		DelayMinutes:   cls.DelayMinutes,
		TotalHours:     cls.TotalHours,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.NewRecordResponse(rec), nil
}

// punchOut closes the open record for the punch date. The status-guarded
// update means a concurrent second punch-out loses cleanly.
func (a *AttendanceServiceImpl) punchOut(ctx context.Context, employeeID string, at time.Time) (attendance.RecordResponse, error) {
	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, calendar.Midnight(at))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil || rec.TimeIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotPunchedIn
	}
	if rec.TimeOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	expectedIn := *rec.TimeIn
	if rec.ExpectedTimeIn != nil {
		expectedIn = *rec.ExpectedTimeIn
	}

	cls := attendance.Classify(rec.TimeIn, &at, expectedIn, a.rules.GracePeriod)

	rec.TimeOut = &at
	rec.Status = cls.Status
	rec.DelayMinutes = cls.DelayMinutes
	rec.TotalHours = cls.TotalHours

	if err := a.AttendanceRepository.CompletePunchOut(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.NewRecordResponse(*rec), nil
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return a.punchIn(ctx, actor.ID, req.At(time.Now()))
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, actor user.Actor, req attendance.PunchRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	return a.punchOut(ctx, actor.ID, req.At(time.Now()))
}

// PunchFor implements attendance.AttendanceService. An actor may punch for
// themselves (device intake resolves the employee first) or, with RH/DG
// authority, for any employee.
func (a *AttendanceServiceImpl) PunchFor(ctx context.Context, actor user.Actor, req attendance.ManualPunchRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if actor.ID != req.EmployeeID && !actor.Role.CanValidate() {
		return attendance.RecordResponse{}, user.ErrRHAccessRequired
	}

	employee, err := a.UserRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !employee.IsActive {
		return attendance.RecordResponse{}, user.ErrInactiveUser
	}

	at := req.At(time.Now())
	if req.PunchType == "in" {
		return a.punchIn(ctx, employee.ID, at)
	}
	return a.punchOut(ctx, employee.ID, at)
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, actor user.Actor, id string) (attendance.RecordResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if !actor.Role.CanValidate() && rec.EmployeeID != actor.ID {
		return attendance.RecordResponse{}, attendance.ErrUnauthorized
	}

	return attendance.NewRecordResponse(rec), nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, actor user.Actor, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	// Employees only ever see their own rows, whatever they asked for.
	if !actor.Role.CanValidate() {
		filter.EmployeeID = actor.ID
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// FinalizeAbsences implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) FinalizeAbsences(ctx context.Context, actor user.Actor, req attendance.FinalizeAbsencesRequest) (attendance.FinalizeAbsencesResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.FinalizeAbsencesResponse{}, err
	}

	if !actor.Role.CanValidate() {
		return attendance.FinalizeAbsencesResponse{}, user.ErrRHAccessRequired
	}

	date := calendar.Midnight(time.Now().AddDate(0, 0, -1))
	if req.Date != "" {
		parsed, _ := validator.IsValidDate(req.Date)
		date = calendar.Midnight(parsed)
	}

	if !date.Before(calendar.Midnight(time.Now())) {
		return attendance.FinalizeAbsencesResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "date must be a past date"},
		}
	}

	resp := attendance.FinalizeAbsencesResponse{Date: date.Format("2006-01-02")}

	// Nobody is expected on a non-working day.
	if !a.calendar.IsWorkingDay(date) {
		return resp, nil
	}

	employees, err := a.UserRepository.ListActiveEmployees(ctx)
	if err != nil {
		return attendance.FinalizeAbsencesResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	for _, employee := range employees {
		created, err := a.AttendanceRepository.CreateAbsent(ctx, employee.ID, date)
		if err != nil {
			return attendance.FinalizeAbsencesResponse{}, fmt.Errorf("failed to finalize absence for employee %s: %w", employee.ID, err)
		}
		if created {
			resp.AbsencesCreated++
		}
	}

	return resp, nil
}
