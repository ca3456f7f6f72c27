package justification

import (
	"context"

	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// JustificationService defines the submit/decide workflow. Preconditions are
// enforced here, against the actor passed in, never assumed from the caller.
type JustificationService interface {
	// Submit files (or refiles, after a refusal) a justification for an
	// eligible record owned by the actor.
	Submit(ctx context.Context, actor user.Actor, req SubmitRequest) (CaseResponse, error)

	// Decide approves or refuses a pending case (RH/DG only, one shot).
	Decide(ctx context.Context, actor user.Actor, req DecideRequest) (CaseResponse, error)

	// GetCase retrieves a single case; employees see only their own.
	GetCase(ctx context.Context, actor user.Actor, id string) (CaseResponse, error)

	// ListCases retrieves cases; employees are scoped to their own.
	ListCases(ctx context.Context, actor user.Actor, filter CaseFilter) (ListCasesResponse, error)
}
