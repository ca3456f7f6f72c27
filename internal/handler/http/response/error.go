package response

import (
	"errors"
	"net/http"

	"github.com/pointago/pointage-backend-go/internal/domain/attendance"
	"github.com/pointago/pointage-backend-go/internal/domain/auth"
	"github.com/pointago/pointage-backend-go/internal/domain/biometric"
	"github.com/pointago/pointage-backend-go/internal/domain/justification"
	"github.com/pointago/pointage-backend-go/internal/domain/schedule"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRHAccessRequired):
		Forbidden(w, "RH or DG access required")
	case errors.Is(err, user.ErrInactiveUser):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUnknownBiometricID):
		NotFound(w, "No employee matches this biometric id")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in for this date")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out for this date")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "No punch-in recorded for this date")
	case errors.Is(err, attendance.ErrNoShiftSchedule):
		ConfigurationError(w, "No shift schedule configured for this weekday")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance record")

	// Justification domain errors
	case errors.Is(err, justification.ErrCaseNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrNotEligible):
		BadRequest(w, "Record is not eligible for justification", nil)
	case errors.Is(err, justification.ErrAlreadyPending):
		Conflict(w, "A justification is already pending for this record")
	case errors.Is(err, justification.ErrAlreadyApproved):
		Conflict(w, "An approved justification already exists for this record")
	case errors.Is(err, justification.ErrNotOwner):
		Forbidden(w, "Only the record's employee may access this justification")
	case errors.Is(err, justification.ErrAlreadyDecided):
		Conflict(w, "Justification has already been decided")
	case errors.Is(err, justification.ErrNeverSubmitted):
		NotFound(w, "No justification has been submitted for this record")
	case errors.Is(err, justification.ErrValidatorRequired):
		Forbidden(w, "RH or DG role required to decide a justification")
	case errors.Is(err, justification.ErrSelfValidation):
		Forbidden(w, "Cannot decide a justification on your own record")
	case errors.Is(err, justification.ErrInvalidDecision):
		BadRequest(w, "Decision must be APPROUVEE or REFUSEE", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift schedule not found")

	// Biometric domain errors
	case errors.Is(err, biometric.ErrLogNotFound):
		NotFound(w, "Biometric log not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
