package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pointago/pointage-backend-go/internal/domain/justification"
	"github.com/pointago/pointage-backend-go/internal/pkg/database"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.CaseRepository {
	return &justificationRepository{db: db}
}

const caseColumns = `
	j.id, j.record_id, j.employee_id, j.justification_text, j.attachment_path,
	j.status, j.submitted_at, j.decided_by, j.decided_at, j.created_at, j.updated_at`

const caseJoins = `
	LEFT JOIN users u ON u.id = j.employee_id
	LEFT JOIN users d ON d.id = j.decided_by
	LEFT JOIN attendance_records a ON a.id = j.record_id`

const caseJoinColumns = `,
	u.first_name || ' ' || u.last_name AS employee_name,
	d.first_name || ' ' || d.last_name AS decider_name,
	a.date AS record_date, a.status AS record_status, a.delay_minutes`

func scanJoinedCase(row pgx.Row) (justification.Case, error) {
	var c justification.Case
	err := row.Scan(
		&c.ID, &c.RecordID, &c.EmployeeID, &c.Text, &c.AttachmentPath,
		&c.Status, &c.SubmittedAt, &c.DecidedBy, &c.DecidedAt, &c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName, &c.DeciderName, &c.RecordDate, &c.RecordStatus, &c.DelayMinutes,
	)
	return c, err
}

// Create implements justification.CaseRepository.
func (r *justificationRepository) Create(ctx context.Context, c justification.Case) (justification.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (
			record_id, employee_id, justification_text, attachment_path, status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.RecordID,
		c.EmployeeID,
		c.Text,
		c.AttachmentPath,
		c.Status,
		c.SubmittedAt,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			// Unique record_id: a concurrent first submission won.
			return justification.Case{}, justification.ErrAlreadyPending
		}
		return justification.Case{}, fmt.Errorf("failed to create justification case: %w", err)
	}

	return c, nil
}

// GetByID implements justification.CaseRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string) (justification.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + caseColumns + caseJoinColumns + `
		FROM justifications j
		` + caseJoins + `
		WHERE j.id = $1
	`

	c, err := scanJoinedCase(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Case{}, justification.ErrCaseNotFound
		}
		return justification.Case{}, fmt.Errorf("failed to get justification case by ID: %w", err)
	}

	return c, nil
}

// GetByRecordID implements justification.CaseRepository.
func (r *justificationRepository) GetByRecordID(ctx context.Context, recordID string) (*justification.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + caseColumns + `
		FROM justifications j
		WHERE j.record_id = $1
		LIMIT 1
	`

	var c justification.Case
	err := q.QueryRow(ctx, query, recordID).Scan(
		&c.ID, &c.RecordID, &c.EmployeeID, &c.Text, &c.AttachmentPath,
		&c.Status, &c.SubmittedAt, &c.DecidedBy, &c.DecidedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no submission yet
		}
		return nil, fmt.Errorf("failed to get justification case by record ID: %w", err)
	}

	return &c, nil
}

// Resubmit implements justification.CaseRepository.
// Conditional on REFUSEE so a resubmission cannot clobber a pending or
// approved case that won a concurrent race.
func (r *justificationRepository) Resubmit(ctx context.Context, c justification.Case) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET justification_text = $1, attachment_path = $2, status = 'EN_ATTENTE',
			submitted_at = $3, decided_by = NULL, decided_at = NULL, updated_at = NOW()
		WHERE id = $4
		  AND status = 'REFUSEE'
	`

	tag, err := q.Exec(ctx, query, c.Text, c.AttachmentPath, c.SubmittedAt, c.ID)
	if err != nil {
		return false, fmt.Errorf("failed to resubmit justification: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Decide implements justification.CaseRepository.
func (r *justificationRepository) Decide(ctx context.Context, caseID string, decision justification.Status, decidedBy string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3
		  AND status = 'EN_ATTENTE'
	`

	tag, err := q.Exec(ctx, query, decision, decidedBy, caseID)
	if err != nil {
		return false, fmt.Errorf("failed to decide justification: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// List implements justification.CaseRepository.
func (r *justificationRepository) List(ctx context.Context, filter justification.CaseFilter) ([]justification.Case, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != "" {
		addCondition("j.employee_id = $%d", filter.EmployeeID)
	}
	if filter.Status != "" {
		addCondition("j.status = $%d", filter.Status)
	}
	if filter.DateFrom != "" {
		addCondition("a.date >= $%d", filter.DateFrom)
	}
	if filter.DateTo != "" {
		addCondition("a.date <= $%d", filter.DateTo)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM justifications j
		LEFT JOIN attendance_records a ON a.id = j.record_id
		` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count justification cases: %w", err)
	}

	listQuery := `
		SELECT ` + caseColumns + caseJoinColumns + `
		FROM justifications j
		` + caseJoins + `
		` + where + `
		ORDER BY j.submitted_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list justification cases: %w", err)
	}
	defer rows.Close()

	var cases []justification.Case
	for rows.Next() {
		var c justification.Case
		if err := rows.Scan(
			&c.ID, &c.RecordID, &c.EmployeeID, &c.Text, &c.AttachmentPath,
			&c.Status, &c.SubmittedAt, &c.DecidedBy, &c.DecidedAt, &c.CreatedAt, &c.UpdatedAt,
			&c.EmployeeName, &c.DeciderName, &c.RecordDate, &c.RecordStatus, &c.DelayMinutes,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan justification case: %w", err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate justification cases: %w", err)
	}

	return cases, total, nil
}
