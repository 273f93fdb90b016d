package payroll

import (
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hoursPerDay        = decimal.NewFromInt(8)
	workDaysPerMonth   = decimal.NewFromInt(22)
	monthsPerYear      = decimal.NewFromInt(12)
	overtimeMultiplier = decimal.RequireFromString("1.5")
)

// HourlyEquivalent normalizes any rate to a per-hour figure. Overtime and
// late deductions are always priced with it.
func HourlyEquivalent(rate decimal.Decimal, rateType employee.RateType) (decimal.Decimal, error) {
	switch rateType {
	case employee.RateTypeHourly:
		return rate, nil
	case employee.RateTypeDaily:
		return rate.Div(hoursPerDay), nil
	case employee.RateTypeMonthly:
		return rate.Div(workDaysPerMonth.Mul(hoursPerDay)), nil
	case employee.RateTypeAnnual:
		return rate.Div(workDaysPerMonth.Mul(monthsPerYear).Mul(hoursPerDay)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrInvalidRateType, rateType)
	}
}

// ComputeGross is the base pay before overtime. Hourly rates scale with regular
// hours; every other rate type pays per day worked.
func ComputeGross(rate decimal.Decimal, rateType employee.RateType, summary payroll.PeriodAttendanceSummary) (decimal.Decimal, error) {
	days := decimal.NewFromInt(int64(summary.DaysWorked))

	switch rateType {
	case employee.RateTypeHourly:
		return rate.Mul(summary.RegularHours), nil
	case employee.RateTypeDaily:
		return rate.Mul(days), nil
	case employee.RateTypeMonthly:
		return rate.Div(workDaysPerMonth).Mul(days), nil
	case employee.RateTypeAnnual:
		return rate.Div(monthsPerYear).Div(workDaysPerMonth).Mul(days), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrInvalidRateType, rateType)
	}
}

// ComputeOvertime pays overtime hours at time and a half of the hourly equivalent.
func ComputeOvertime(rate decimal.Decimal, rateType employee.RateType, overtimeHours decimal.Decimal) (decimal.Decimal, error) {
	hourly, err := HourlyEquivalent(rate, rateType)
	if err != nil {
		return decimal.Zero, err
	}
	if !overtimeHours.IsPositive() {
		return decimal.Zero, nil
	}
	return hourly.Mul(overtimeHours).Mul(overtimeMultiplier), nil
}

// ComputeLateDeduction prices late minutes at the hourly equivalent, rounded to cents.
func ComputeLateDeduction(rate decimal.Decimal, rateType employee.RateType, lateMinutes int) (decimal.Decimal, error) {
	hourly, err := HourlyEquivalent(rate, rateType)
	if err != nil {
		return decimal.Zero, err
	}
	if lateMinutes <= 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(int64(lateMinutes)).Div(minutesPerHour).Mul(hourly).Round(2), nil
}
