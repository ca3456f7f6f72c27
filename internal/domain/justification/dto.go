package justification

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// JUSTIFICATION DTOs
// ========================================

type SubmitRequest struct {
	RecordID string                `json:"record_id"`
	Text     string                `json:"justification"`
	File     multipart.File        `json:"-"`
	FileHead *multipart.FileHeader `json:"-"`
}

var allowedAttachmentExts = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification text is required",
		})
	}

	if r.FileHead != nil {
		ext := strings.ToLower(filepath.Ext(r.FileHead.Filename))
		if !validator.IsInSlice(ext, allowedAttachmentExts) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only pdf, doc, docx, jpg, png allowed",
			})
		} else if r.FileHead.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "attachment size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	CaseID   string `json:"-"`
	Decision string `json:"decision"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CaseID) {
		errs = append(errs, validator.ValidationError{
			Field:   "case_id",
			Message: "case_id is required",
		})
	}

	d := Status(r.Decision)
	if d != StatusApprouvee && d != StatusRefusee {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be APPROUVEE or REFUSEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CaseFilter drives the pending-justification queues for RH and the
// employee's own history.
type CaseFilter struct {
	EmployeeID string
	Status     string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

func (f *CaseFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !Status(f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of EN_ATTENTE, APPROUVEE, REFUSEE",
		})
	}

	if f.DateFrom != "" {
		if _, ok := validator.IsValidDate(f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be YYYY-MM-DD",
			})
		}
	}

	if f.DateTo != "" {
		if _, ok := validator.IsValidDate(f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be YYYY-MM-DD",
			})
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CaseResponse struct {
	ID             string  `json:"id"`
	RecordID       string  `json:"record_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	RecordDate     string  `json:"record_date,omitempty"`
	RecordStatus   string  `json:"record_status,omitempty"`
	DelayMinutes   *int    `json:"delay_minutes,omitempty"`
	Text           string  `json:"justification"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	StatusSeverity string  `json:"status_severity"`
	SubmittedAt    string  `json:"submitted_at"`
	DecidedBy      *string `json:"decided_by,omitempty"`
	DeciderName    *string `json:"decider_name,omitempty"`
	DecidedAt      *string `json:"decided_at,omitempty"`
}

type ListCasesResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Cases      []CaseResponse `json:"cases"`
}

// NewCaseResponse maps a case to its API shape, resolving labels from the
// canonical status table.
func NewCaseResponse(c Case) CaseResponse {
	info := c.Status.Info()

	resp := CaseResponse{
		ID:             c.ID,
		RecordID:       c.RecordID,
		EmployeeID:     c.EmployeeID,
		DelayMinutes:   c.DelayMinutes,
		Text:           c.Text,
		AttachmentURL:  c.AttachmentURL,
		Status:         string(c.Status),
		StatusLabel:    info.Label,
		StatusSeverity: info.Severity,
		SubmittedAt:    c.SubmittedAt.Format("2006-01-02 15:04:05"),
		DecidedBy:      c.DecidedBy,
		DeciderName:    c.DeciderName,
	}

	if c.EmployeeName != nil {
		resp.EmployeeName = *c.EmployeeName
	}
	if c.RecordDate != nil {
		resp.RecordDate = c.RecordDate.Format("2006-01-02")
	}
	if c.RecordStatus != nil {
		resp.RecordStatus = *c.RecordStatus
	}
	if c.DecidedAt != nil {
		decidedAt := c.DecidedAt.Format("2006-01-02 15:04:05")
		resp.DecidedAt = &decidedAt
	}

	return resp
}
