package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
)

// EmployeePeriodInput is everything needed to pay one employee for one period.
type EmployeePeriodInput struct {
	Employee    employee.Employee
	Shift       schedule.Shift
	Attendance  []attendance.AttendanceRecord
	PeriodStart time.Time
	PeriodEnd   time.Time
	PaymentDate time.Time
	PayType     payroll.PayType
}

// ComputeEmployeePayroll runs the full attendance-to-pay chain and returns a
// pending record. Amounts keep full precision through the chain and are
// rounded to cents on the record; net pay is taken from the rounded gross.
func ComputeEmployeePayroll(in EmployeePeriodInput) (payroll.PayrollRecord, error) {
	rate, ok := in.Employee.RateInfo()
	if !ok || !rate.Rate.IsPositive() {
		return payroll.PayrollRecord{}, payroll.ErrMissingOrInvalidRate
	}
	if !rate.Type.IsValid() {
		return payroll.PayrollRecord{}, payroll.ErrInvalidRateType
	}

	summary, err := AggregatePeriod(in.Attendance, in.PeriodStart, in.PeriodEnd, in.Shift)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	grossBase, err := ComputeGross(rate.Rate, rate.Type, summary)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	overtimePay, err := ComputeOvertime(rate.Rate, rate.Type, summary.OvertimeHours)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	lateDeduction, err := ComputeLateDeduction(rate.Rate, rate.Type, summary.LateMinutes)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	grossTotal := grossBase.Add(overtimePay)
	deductions, _ := ComputeNetPay(grossTotal, in.Employee.FundMember, lateDeduction)

	// Stored net pay is always gross pay minus total deductions as recorded.
	grossPay := grossTotal.Round(2)
	netPay := grossPay.Sub(deductions.Total)

	return payroll.PayrollRecord{
		EmployeeID:      in.Employee.ID,
		PeriodStart:     civilDate(in.PeriodStart),
		PeriodEnd:       civilDate(in.PeriodEnd),
		PaymentDate:     civilDate(in.PaymentDate),
		PayType:         in.PayType,
		RateType:        rate.Type,
		Rate:            rate.Rate,
		BaseSalary:      grossBase.Round(2),
		RegularHours:    summary.RegularHours,
		OvertimeHours:   summary.OvertimeHours,
		OvertimePay:     overtimePay.Round(2),
		GrossPay:        grossPay,
		TaxDeduction:    deductions.Tax,
		FundDeduction:   deductions.Fund,
		OtherDeductions: deductions.Other,
		TotalDeductions: deductions.Total,
		NetPay:          netPay,
		DaysWorked:      summary.DaysWorked,
		DaysAbsent:      summary.DaysAbsent,
		DaysLate:        summary.DaysLate,
		LateMinutes:     summary.LateMinutes,
		Status:          payroll.PayrollStatusPending,
		EmployeeName:    &in.Employee.FullName,
		EmployeeCode:    &in.Employee.EmployeeCode,
	}, nil
}
