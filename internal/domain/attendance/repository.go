package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// ListByEmployeeAndPeriod returns the records dated within [start, end], ordered by date.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceRecord, error)

	// GetByEmployeeAndDate returns nil when the employee has no record for the date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// Upsert creates the record or replaces the punches and status of the existing one.
	Upsert(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
}
