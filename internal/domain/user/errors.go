package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrRHAccessRequired   = errors.New("rh or dg access required")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrUnknownBiometricID = errors.New("no employee matches this biometric id")
)
