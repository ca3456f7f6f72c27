package schedule

import "errors"

var (
	ErrShiftNotFound = errors.New("shift schedule not found")
)
