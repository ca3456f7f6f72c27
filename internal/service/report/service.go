package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/report"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/export"
)

// exportPageLimit bounds one export; the filter's pagination is ignored and
// the export walks every matching page instead.
const exportPageLimit = 200

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepository attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// Export implements report.ReportService.
func (r *ReportServiceImpl) Export(ctx context.Context, actor user.Actor, req report.ExportRequest) (report.ExportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ExportResponse{}, err
	}

	filter := req.Filter
	if !actor.Role.CanValidate() {
		filter.EmployeeID = actor.ID
	}
	filter.Page = 1
	filter.Limit = exportPageLimit

	var responses []attendance.RecordResponse
	for {
		records, total, err := r.AttendanceRepository.List(ctx, filter)
		if err != nil {
			return report.ExportResponse{}, fmt.Errorf("failed to list records for export: %w", err)
		}
		for _, rec := range records {
			responses = append(responses, attendance.NewRecordResponse(rec))
		}
		if int64(filter.Page*filter.Limit) >= total || len(records) == 0 {
			break
		}
		filter.Page++
	}

	now := time.Now()
	stamp := now.Format("2006-01-02")

	switch req.Format {
	case report.FormatXLSX:
		content, err := export.RecordsXLSX(responses, now)
		if err != nil {
			return report.ExportResponse{}, err
		}
		return report.ExportResponse{
			Filename:    fmt.Sprintf("pointages_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	case report.FormatPDF:
		content, err := export.RecordsPDF(responses, now)
		if err != nil {
			return report.ExportResponse{}, err
		}
		return report.ExportResponse{
			Filename:    fmt.Sprintf("pointages_%s.pdf", stamp),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}

	// Validate guarantees the format; keep the compiler honest.
	return report.ExportResponse{}, fmt.Errorf("unsupported export format: %s", req.Format)
}
