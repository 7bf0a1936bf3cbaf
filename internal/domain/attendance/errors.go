package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("employee already has an attendance record for this date")
	ErrAlreadyCheckedOut  = errors.New("attendance record already has a check-out")
	ErrNoCheckIn          = errors.New("attendance record has no check-in")
)
