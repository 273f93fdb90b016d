package payroll

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrMissingOrInvalidRate    = errors.New("employment rate is missing or not positive")
	ErrNoAttendanceInPeriod    = errors.New("no attendance in pay period")
	ErrBatchEmpty              = errors.New("no payroll records were produced")
	ErrInvalidRateType         = errors.New("invalid rate type")
	ErrInvalidTimeOfDay        = errors.New("invalid time of day")
	ErrPayrollRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidStatusTransition = errors.New("invalid payroll status transition")
)
