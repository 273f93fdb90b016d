package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/auth"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Employee errors
	case errors.Is(err, payroll.ErrEmployeeNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrBatchEmpty):
		UnprocessableEntity(w, "No payroll records were produced", nil)
	case errors.Is(err, payroll.ErrMissingOrInvalidRate),
		errors.Is(err, payroll.ErrNoAttendanceInPeriod),
		errors.Is(err, payroll.ErrInvalidRateType):
		UnprocessableEntity(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoShiftAssigned):
		UnprocessableEntity(w, "Employee has no shift assigned", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Cannot clock out before clocking in", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Slot already has a clock-in time")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Slot already has a clock-out time")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
