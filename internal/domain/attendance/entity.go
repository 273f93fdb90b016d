package attendance

import (
	"time"
)

// GracePeriod is how long after the scheduled start a clock-in still counts as on time.
const GracePeriod = 15 * time.Minute

// EmptyPunch is how the timekeeping store marks a slot that was never punched.
const EmptyPunch = "00:00:00"

// AttendanceRecord holds one employee's clock events for one calendar date.
// Times are times of day; nil, "" and "00:00:00" all mean "not punched".
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	AMIn       *string
	AMOut      *string
	PMIn       *string
	PMOut      *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

// CountsAsWorked reports whether a record with this status can contribute worked time.
func (s Status) CountsAsWorked() bool {
	return s == StatusPresent || s == StatusLate
}

type Slot string

const (
	SlotAM Slot = "AM"
	SlotPM Slot = "PM"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)
