package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// PayType enum
type PayType string

const (
	PayTypeRegular  PayType = "regular"
	PayTypeOffCycle PayType = "off_cycle"
	PayTypeFinal    PayType = "final"
)

var PayTypeValues = []string{
	string(PayTypeRegular),
	string(PayTypeOffCycle),
	string(PayTypeFinal),
}

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending  PayrollStatus = "pending"
	PayrollStatusApproved PayrollStatus = "approved"
	PayrollStatusPaid     PayrollStatus = "paid"
	PayrollStatusRejected PayrollStatus = "rejected"
)

var PayrollStatusValues = []string{
	string(PayrollStatusPending),
	string(PayrollStatusApproved),
	string(PayrollStatusPaid),
	string(PayrollStatusRejected),
}

// CanTransitionTo encodes pending -> approved -> paid, with rejection allowed
// before payment.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	switch s {
	case PayrollStatusPending:
		return next == PayrollStatusApproved || next == PayrollStatusRejected
	case PayrollStatusApproved:
		return next == PayrollStatusPaid || next == PayrollStatusRejected
	}
	return false
}

// PayrollRecord - one employee, one pay period
type PayrollRecord struct {
	ID              string
	RunID           string
	EmployeeID      string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	PaymentDate     time.Time
	PayType         PayType
	RateType        employee.RateType
	Rate            decimal.Decimal
	BaseSalary      decimal.Decimal
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimePay     decimal.Decimal
	GrossPay        decimal.Decimal
	TaxDeduction    decimal.Decimal
	FundDeduction   decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	DaysWorked      int
	DaysAbsent      int
	DaysLate        int
	LateMinutes     int
	Status          PayrollStatus
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// AttendanceEvaluation - one day's contribution to the period
type AttendanceEvaluation struct {
	// Counted is false when the day contributes nothing.
	Counted         bool
	WorkedMinutes   int
	RegularMinutes  int
	OvertimeMinutes int
	Late            bool
	LateMinutes     int
}

// PeriodAttendanceSummary - aggregate over a pay period.
// DaysWorked + DaysAbsent does not always equal TotalWorkingDays.
type PeriodAttendanceSummary struct {
	RegularMinutes   int
	OvertimeMinutes  int
	RegularHours     decimal.Decimal
	OvertimeHours    decimal.Decimal
	DaysWorked       int
	DaysAbsent       int
	DaysLate         int
	LateMinutes      int
	TotalWorkingDays int
}

// Deductions - withholding breakdown
type Deductions struct {
	Tax   decimal.Decimal
	Fund  decimal.Decimal
	Other decimal.Decimal
	Total decimal.Decimal
}

// SkippedEmployee - an employee the run could not pay
type SkippedEmployee struct {
	EmployeeID string
	Reason     string
	Err        error
}

// RunResult - fold of a payroll run into records and skips
type RunResult struct {
	RunID   string
	Records []PayrollRecord
	Skipped []SkippedEmployee
}
