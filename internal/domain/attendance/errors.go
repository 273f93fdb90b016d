package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotCheckedIn       = errors.New("cannot clock out before clocking in")
	ErrAlreadyCheckedIn   = errors.New("slot already has a clock-in time")
	ErrAlreadyCheckedOut  = errors.New("slot already has a clock-out time")
	ErrNoShiftAssigned    = errors.New("employee has no shift assigned")
)
