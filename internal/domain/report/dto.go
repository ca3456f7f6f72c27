package report

import (
	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportRequest selects and formats a record set for download. The filter
// reuses the attendance listing semantics; the renderer only formats what
// the engine already classified.
type ExportRequest struct {
	Format string
	Filter attendance.RecordFilter
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format != FormatXLSX && r.Format != FormatPDF {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be xlsx or pdf",
		})
	}

	if err := r.Filter.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExportResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}
