package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type PunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Direction  string `json:"direction"`
	Time       string `json:"time"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if Slot(r.Slot) != SlotAM && Slot(r.Slot) != SlotPM {
		errs = append(errs, validator.ValidationError{
			Field:   "slot",
			Message: "slot must be AM or PM",
		})
	}

	if Direction(r.Direction) != DirectionIn && Direction(r.Direction) != DirectionOut {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be in or out",
		})
	}

	if !validator.IsValidTimeOfDay(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM or HH:MM:SS format",
		})
	} else if r.Time == "00:00:00" {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "00:00:00 is reserved for an empty punch",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the request date; only valid after Validate succeeds.
func (r *PunchRequest) ParsedDate() time.Time {
	date, _ := validator.IsValidDate(r.Date)
	return date
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	AMIn       *string `json:"am_in,omitempty"`
	AMOut      *string `json:"am_out,omitempty"`
	PMIn       *string `json:"pm_in,omitempty"`
	PMOut      *string `json:"pm_out,omitempty"`
	Status     string  `json:"status"`
}
