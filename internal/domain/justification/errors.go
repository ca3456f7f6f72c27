package justification

import "errors"

// Justification domain errors. AlreadyPending/AlreadyApproved/AlreadyDecided
// and NeverSubmitted are deliberately distinct so callers can tell a
// duplicate action from a missing one.
var (
	ErrCaseNotFound = errors.New("justification case not found")

	// Submission errors
	ErrNotEligible     = errors.New("record is not eligible for justification")
	ErrAlreadyPending  = errors.New("a justification is already pending for this record")
	ErrAlreadyApproved = errors.New("an approved justification already exists for this record")
	ErrNotOwner        = errors.New("only the record's employee may justify it")

	// Decision errors
	ErrAlreadyDecided    = errors.New("justification has already been decided")
	ErrNeverSubmitted    = errors.New("no justification has been submitted for this record")
	ErrValidatorRequired = errors.New("rh or dg role required to decide a justification")
	ErrSelfValidation    = errors.New("cannot decide a justification on your own record")
	ErrInvalidDecision   = errors.New("decision must be APPROUVEE or REFUSEE")
)
