package http

import (
	"net/http"

	"github.com/pointago/pointage-backend-go/internal/domain/statistics"
	"github.com/pointago/pointage-backend-go/internal/handler/http/response"
)

type StatisticsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandlerImpl{
		statisticsService: statisticsService,
	}
}

// Get implements StatisticsHandler.
func (h *statisticsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	filter := statistics.StatsFilter{
		EmployeeID: q.Get("employee_id"),
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
	}

	result, err := h.statisticsService.Aggregate(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
