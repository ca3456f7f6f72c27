package statistics

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pointago/pointage-backend-go/internal/domain/statistics"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/calendar"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

type StatisticsServiceImpl struct {
	statistics.StatisticsRepository
	user.UserRepository
	calendar *calendar.Calendar
}

func NewStatisticsService(
	statisticsRepository statistics.StatisticsRepository,
	userRepository user.UserRepository,
	cal *calendar.Calendar,
) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		StatisticsRepository: statisticsRepository,
		UserRepository:       userRepository,
		calendar:             cal,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) Aggregate(ctx context.Context, actor user.Actor, filter statistics.StatsFilter) (statistics.StatisticsResponse, error) {
	if err := filter.Validate(); err != nil {
		return statistics.StatisticsResponse{}, err
	}

	// Employees only ever aggregate their own records.
	if !actor.Role.CanValidate() {
		filter.EmployeeID = actor.ID
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := calendar.Midnight(now)
	if filter.DateFrom != "" {
		from, _ = validator.IsValidDate(filter.DateFrom)
	}
	if filter.DateTo != "" {
		to, _ = validator.IsValidDate(filter.DateTo)
	}
	filter.DateFrom = from.Format("2006-01-02")
	filter.DateTo = to.Format("2006-01-02")

	var (
		counts        statistics.Counts
		avgHours      float64
		lateTotal     int64
		lateJustified int64
		headcount     int
	)

	// The aggregates are independent single queries; fan them out.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counts, err = s.StatisticsRepository.CountByStatus(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count records by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		avgHours, err = s.StatisticsRepository.AvgHoursPerDay(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to average worked hours: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		lateTotal, lateJustified, err = s.StatisticsRepository.CountLateJustified(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count justified lates: %w", err)
		}
		return nil
	})

	if filter.EmployeeID == "" {
		g.Go(func() error {
			employees, err := s.UserRepository.ListActiveEmployees(gctx)
			if err != nil {
				return fmt.Errorf("failed to list active employees: %w", err)
			}
			headcount = len(employees)
			return nil
		})
	} else {
		headcount = 1
	}

	if err := g.Wait(); err != nil {
		return statistics.StatisticsResponse{}, err
	}

	workingDays := s.calendar.WorkingDays(from, to)

	// Both rates report 0 over an empty denominator rather than erroring.
	attendanceRate := 0.0
	if expected := workingDays * headcount; expected > 0 {
		attendanceRate = round1(float64(counts.Presences) / float64(expected) * 100)
	}

	justifiedLateRatio := 0.0
	if lateTotal > 0 {
		justifiedLateRatio = round1(float64(lateJustified) / float64(lateTotal) * 100)
	}

	return statistics.StatisticsResponse{
		Period: statistics.Period{
			DateFrom: filter.DateFrom,
			DateTo:   filter.DateTo,
		},
		Statistics: statistics.Statistics{
			TotalPresences:     counts.Presences,
			TotalAbsences:      counts.Absences,
			TotalRetards:       counts.Retards,
			AvgHoursPerDay:     round1(avgHours),
			WorkingDays:        workingDays,
			AttendanceRate:     attendanceRate,
			JustifiedLateRatio: justifiedLateRatio,
		},
	}, nil
}
