package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("already punched in for this date")
	ErrAlreadyPunchedOut = errors.New("already punched out for this date")
	ErrNotPunchedIn      = errors.New("no punch-in recorded for this date")
	ErrNoShiftSchedule   = errors.New("no shift schedule configured for this weekday")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
