package schedule

import "context"

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	// GetByEmployeeID returns ErrShiftNotFound when the employee has no shift assigned.
	GetByEmployeeID(ctx context.Context, employeeID string) (Shift, error)
}
