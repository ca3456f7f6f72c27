package justification

import "context"

// CaseRepository defines data access for justification cases.
//
// Resubmit and Decide are conditional updates keyed on the current status,
// so two concurrent actors cannot both win; the loser sees zero rows
// affected and maps that back to the domain error for the state it found.
type CaseRepository interface {
	// Create inserts the first submission for a record. The unique
	// record_id key makes a concurrent duplicate submission fail.
	Create(ctx context.Context, c Case) (Case, error)

	// GetByID retrieves a case by ID
	GetByID(ctx context.Context, id string) (Case, error)

	// GetByRecordID returns nil when the record has no case yet.
	GetByRecordID(ctx context.Context, recordID string) (*Case, error)

	// Resubmit replaces text/attachment and reopens a REFUSEE case to
	// EN_ATTENTE, clearing the prior decision. Returns false when the case
	// was not REFUSEE anymore.
	Resubmit(ctx context.Context, c Case) (bool, error)

	// Decide applies a decision to a case that is still EN_ATTENTE.
	// Returns false when the case was already decided.
	Decide(ctx context.Context, caseID string, decision Status, decidedBy string) (bool, error)

	// List retrieves cases with filters and pagination.
	List(ctx context.Context, filter CaseFilter) ([]Case, int64, error)
}
