package http

import (
	"fmt"
	"net/http"

	"github.com/pointago/pointage-backend-go/internal/domain/report"
	"github.com/pointago/pointage-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Export implements ReportHandler. The format and record filter both come
// off the query string; the body is streamed as a file download.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := report.ExportRequest{
		Format: r.URL.Query().Get("format"),
		Filter: recordFilterFromQuery(r),
	}

	result, err := h.reportService.Export(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Write(result.Content)
}
