package statistics

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// StatisticsService folds classified records into dashboard metrics.
type StatisticsService interface {
	// Aggregate computes the statistics for a period. Employees are scoped
	// to their own records; RH/DG may aggregate any employee or everyone.
	Aggregate(ctx context.Context, actor user.Actor, filter StatsFilter) (StatisticsResponse, error)
}
