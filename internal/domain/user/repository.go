package user

import "context"

// UserRepository resolves accounts for authentication and the biometric
// intake path.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByBiometricID resolves a punch-device identifier to its employee.
	GetByBiometricID(ctx context.Context, biometricID string) (User, error)

	// ListActiveEmployees returns active EMPLOYE accounts; used by the
	// absence finalization pass.
	ListActiveEmployees(ctx context.Context) ([]User, error)
}
