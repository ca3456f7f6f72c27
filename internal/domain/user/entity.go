package user

import "time"

type Role string

const (
	RoleEmploye Role = "EMPLOYE"
	RoleRH      Role = "RH"
	RoleDG      Role = "DG"
)

// CanValidate reports whether the role carries justification-validation
// authority. DG holds the same authority as RH.
func (r Role) CanValidate() bool {
	return r == RoleRH || r == RoleDG
}

func (r Role) Valid() bool {
	return r == RoleEmploye || r == RoleRH || r == RoleDG
}

// Actor is the authenticated caller as resolved by the auth layer. Services
// receive it explicitly and enforce their own ownership/role preconditions
// rather than trusting the transport to have hidden a button.
type Actor struct {
	ID   string
	Role Role
}

// User is both an account and the employee it represents; the platform has
// no separate employee directory.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	BiometricID  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
