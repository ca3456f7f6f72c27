package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pointago/pointage-backend-go/internal/config"
	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/calendar"
)

// AttendanceJobs closes out elapsed dates: once a date's cutoff has passed,
// every active employee without a record gets an ABSENT one. The insert is
// conflict-free, so overlapping runs and manual finalization coexist.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	calendar       *calendar.Calendar
	rules          config.AttendanceConfig
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	cal *calendar.Calendar,
	rules config.AttendanceConfig,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		calendar:       cal,
		rules:          rules,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("finalize_absences", 15*time.Minute, j.FinalizeAbsences)
}

// lastElapsedDate returns the most recent date whose no-show cutoff has
// already passed at now.
func (j *AttendanceJobs) lastElapsedDate(now time.Time) time.Time {
	today := calendar.Midnight(now)
	if !now.Before(today.Add(j.rules.DayCutoff)) {
		return today
	}
	return today.AddDate(0, 0, -1)
}

func (j *AttendanceJobs) FinalizeAbsences(ctx context.Context) error {
	date := j.lastElapsedDate(time.Now())

	if !j.calendar.IsWorkingDay(date) {
		return nil
	}

	employees, err := j.userRepo.ListActiveEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	created := 0
	for _, employee := range employees {
		ok, err := j.attendanceRepo.CreateAbsent(ctx, employee.ID, date)
		if err != nil {
			slog.Error("Cron: Failed to finalize absence",
				"employee_id", employee.ID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		slog.Info("Cron: Finalized absences", "date", date.Format("2006-01-02"), "count", created)
	}
	return nil
}
