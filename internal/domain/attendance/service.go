package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordPunch stores one clock event and derives the day's status from the employee's shift
	RecordPunch(ctx context.Context, req PunchRequest) (AttendanceResponse, error)
}
