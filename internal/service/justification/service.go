package justification

import (
	"context"
	"fmt"
	"time"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/justification"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
	"github.com/pointago/pointage-backend-go/internal/service/file"
)

const attachmentURLExpiry = 15 * time.Minute

type JustificationServiceImpl struct {
	db *database.DB
	justification.CaseRepository
	attendance.AttendanceRepository
	fileService file.FileService
}

func NewJustificationService(
	db *database.DB,
	caseRepository justification.CaseRepository,
	attendanceRepository attendance.AttendanceRepository,
	fileService file.FileService,
) justification.JustificationService {
	return &JustificationServiceImpl{
		db:                   db,
		CaseRepository:       caseRepository,
		AttendanceRepository: attendanceRepository,
		fileService:          fileService,
	}
}

func (j *JustificationServiceImpl) toResponse(ctx context.Context, c justification.Case) justification.CaseResponse {
	if c.AttachmentPath != nil && c.AttachmentURL == nil {
		if url, err := j.fileService.GetFileURL(ctx, *c.AttachmentPath, attachmentURLExpiry); err == nil {
			c.AttachmentURL = &url
		}
	}
	return justification.NewCaseResponse(c)
}

// Submit implements justification.JustificationService.
func (j *JustificationServiceImpl) Submit(ctx context.Context, actor user.Actor, req justification.SubmitRequest) (justification.CaseResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.CaseResponse{}, err
	}

	rec, err := j.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	if rec.EmployeeID != actor.ID {
		return justification.CaseResponse{}, justification.ErrNotOwner
	}
	if !rec.JustificationEligible() {
		return justification.CaseResponse{}, justification.ErrNotEligible
	}

	existing, err := j.CaseRepository.GetByRecordID(ctx, rec.ID)
	if err != nil {
		return justification.CaseResponse{}, fmt.Errorf("failed to get justification case: %w", err)
	}

	if existing != nil {
		switch existing.Status {
		case justification.StatusEnAttente:
			return justification.CaseResponse{}, justification.ErrAlreadyPending
		case justification.StatusApprouvee:
			return justification.CaseResponse{}, justification.ErrAlreadyApproved
		}
		return j.resubmit(ctx, actor, *existing, req)
	}

	attachmentPath, err := j.uploadAttachment(ctx, actor.ID, req)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	created, err := j.CaseRepository.Create(ctx, justification.Case{
		RecordID:       rec.ID,
		EmployeeID:     actor.ID,
		Text:           req.Text,
		AttachmentPath: attachmentPath,
		Status:         justification.StatusEnAttente,
		SubmittedAt:    time.Now(),
	})
	if err != nil {
		return justification.CaseResponse{}, err
	}

	return j.toResponse(ctx, created), nil
}

// resubmit reopens a refused case with fresh content. Losing the
// status-guarded update means someone else moved the case first; the error
// reports the state they left it in.
func (j *JustificationServiceImpl) resubmit(ctx context.Context, actor user.Actor, c justification.Case, req justification.SubmitRequest) (justification.CaseResponse, error) {
	attachmentPath, err := j.uploadAttachment(ctx, actor.ID, req)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	c.Text = req.Text
	if attachmentPath != nil {
		c.AttachmentPath = attachmentPath
	}
	c.SubmittedAt = time.Now()

	ok, err := j.CaseRepository.Resubmit(ctx, c)
	if err != nil {
		return justification.CaseResponse{}, fmt.Errorf("failed to resubmit justification: %w", err)
	}
	if !ok {
		current, err := j.CaseRepository.GetByID(ctx, c.ID)
		if err != nil {
			return justification.CaseResponse{}, justification.ErrAlreadyPending
		}
		if current.Status == justification.StatusApprouvee {
			return justification.CaseResponse{}, justification.ErrAlreadyApproved
		}
		return justification.CaseResponse{}, justification.ErrAlreadyPending
	}

	updated, err := j.CaseRepository.GetByID(ctx, c.ID)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	return j.toResponse(ctx, updated), nil
}

func (j *JustificationServiceImpl) uploadAttachment(ctx context.Context, employeeID string, req justification.SubmitRequest) (*string, error) {
	if req.File == nil || req.FileHead == nil {
		return nil, nil
	}

	path, err := j.fileService.UploadJustificationAttachment(ctx, employeeID, req.File, req.FileHead.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to upload justification attachment: %w", err)
	}

	return &path, nil
}

// Decide implements justification.JustificationService.
func (j *JustificationServiceImpl) Decide(ctx context.Context, actor user.Actor, req justification.DecideRequest) (justification.CaseResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.CaseResponse{}, err
	}

	if !actor.Role.CanValidate() {
		return justification.CaseResponse{}, justification.ErrValidatorRequired
	}

	c, err := j.CaseRepository.GetByID(ctx, req.CaseID)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	if c.EmployeeID == actor.ID {
		return justification.CaseResponse{}, justification.ErrSelfValidation
	}
	if c.Status.Decided() {
		return justification.CaseResponse{}, justification.ErrAlreadyDecided
	}

	ok, err := j.CaseRepository.Decide(ctx, c.ID, justification.Status(req.Decision), actor.ID)
	if err != nil {
		return justification.CaseResponse{}, fmt.Errorf("failed to decide justification: %w", err)
	}
	if !ok {
		// A concurrent validator won the one-shot decision.
		return justification.CaseResponse{}, justification.ErrAlreadyDecided
	}

	decided, err := j.CaseRepository.GetByID(ctx, c.ID)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	return j.toResponse(ctx, decided), nil
}

// GetCase implements justification.JustificationService.
func (j *JustificationServiceImpl) GetCase(ctx context.Context, actor user.Actor, id string) (justification.CaseResponse, error) {
	c, err := j.CaseRepository.GetByID(ctx, id)
	if err != nil {
		return justification.CaseResponse{}, err
	}

	if !actor.Role.CanValidate() && c.EmployeeID != actor.ID {
		return justification.CaseResponse{}, justification.ErrNotOwner
	}

	return j.toResponse(ctx, c), nil
}

// ListCases implements justification.JustificationService.
func (j *JustificationServiceImpl) ListCases(ctx context.Context, actor user.Actor, filter justification.CaseFilter) (justification.ListCasesResponse, error) {
	if err := filter.Validate(); err != nil {
		return justification.ListCasesResponse{}, err
	}

	if !actor.Role.CanValidate() {
		filter.EmployeeID = actor.ID
	}

	cases, total, err := j.CaseRepository.List(ctx, filter)
	if err != nil {
		return justification.ListCasesResponse{}, fmt.Errorf("failed to list justification cases: %w", err)
	}

	responses := make([]justification.CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, j.toResponse(ctx, c))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return justification.ListCasesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Cases:      responses,
	}, nil
}
