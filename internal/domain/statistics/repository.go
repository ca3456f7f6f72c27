package statistics

import "context"

// Counts carries the per-status tallies the aggregator folds together.
type Counts struct {
	Presences int64
	Absences  int64
	Retards   int64
}

// StatisticsRepository reads aggregates over classified records. Each call
// is a single consistent query; no cross-record invariant exists, so the
// aggregator never needs to block writers.
type StatisticsRepository interface {
	// CountByStatus tallies presences (IN_PROGRESS/COMPLETED), absences
	// (ABSENT) and retards (delay_minutes > 0) in one pass.
	CountByStatus(ctx context.Context, filter StatsFilter) (Counts, error)

	// AvgHoursPerDay averages total_hours over COMPLETED records, 0 if none.
	AvgHoursPerDay(ctx context.Context, filter StatsFilter) (float64, error)

	// CountLateJustified returns the late-record total and how many of
	// those carry an APPROUVEE justification.
	CountLateJustified(ctx context.Context, filter StatsFilter) (total int64, justified int64, err error)
}
