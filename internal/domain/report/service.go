package report

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// ReportService renders filtered, already-classified record sets to
// downloadable tabular documents.
type ReportService interface {
	Export(ctx context.Context, actor user.Actor, req ExportRequest) (ExportResponse, error)
}
