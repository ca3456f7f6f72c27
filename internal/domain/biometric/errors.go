package biometric

import "errors"

var (
	ErrLogNotFound = errors.New("biometric log not found")
)
