package payroll

import (
	"testing"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekAttendance covers Mon 2024-03-04 to Wed 2024-03-06: a standard day,
// a day with two hours of overtime, and a day clocked in 30 minutes late.
func weekAttendance() []attendance.AttendanceRecord {
	return []attendance.AttendanceRecord{
		record("2024-03-04", attendance.StatusPresent, "08:00", "12:00", "13:00", "17:00"),
		record("2024-03-05", attendance.StatusPresent, "07:00", "12:00", "13:00", "18:00"),
		record("2024-03-06", attendance.StatusLate, "08:30", "12:00", "13:00", "17:00"),
	}
}

func periodInput(t *testing.T, emp employee.Employee) EmployeePeriodInput {
	return EmployeePeriodInput{
		Employee:    emp,
		Shift:       dayShift,
		Attendance:  weekAttendance(),
		PeriodStart: mustDate(t, "2024-03-04"),
		PeriodEnd:   mustDate(t, "2024-03-08"),
		PaymentDate: mustDate(t, "2024-03-10"),
		PayType:     payroll.PayTypeRegular,
	}
}

func rateEmployee(rate string, rateType employee.RateType, fund bool) employee.Employee {
	r := dec(rate)
	return employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "E-001",
		FullName:     "Rina Hartono",
		Rate:         &r,
		RateType:     rateType,
		FundMember:   fund,
	}
}

func TestComputeEmployeePayroll_Hourly(t *testing.T) {
	rec, err := ComputeEmployeePayroll(periodInput(t, rateEmployee("10", employee.RateTypeHourly, true)))
	require.NoError(t, err)

	assertDecimal(t, "23.5", rec.RegularHours)
	assertDecimal(t, "2", rec.OvertimeHours)
	assertDecimal(t, "235", rec.BaseSalary)
	assertDecimal(t, "30", rec.OvertimePay)
	assertDecimal(t, "265", rec.GrossPay)
	assertDecimal(t, "26.5", rec.TaxDeduction)
	assertDecimal(t, "15.9", rec.FundDeduction)
	assertDecimal(t, "5", rec.OtherDeductions)
	assertDecimal(t, "47.4", rec.TotalDeductions)
	assertDecimal(t, "217.6", rec.NetPay)

	assert.Equal(t, 3, rec.DaysWorked)
	assert.Equal(t, 2, rec.DaysAbsent)
	assert.Equal(t, 1, rec.DaysLate)
	assert.Equal(t, 30, rec.LateMinutes)
	assert.Equal(t, payroll.PayrollStatusPending, rec.Status)
	assert.Equal(t, payroll.PayTypeRegular, rec.PayType)
	assert.Equal(t, "2024-03-10", rec.PaymentDate.Format("2006-01-02"))
	require.NotNil(t, rec.EmployeeName)
	assert.Equal(t, "Rina Hartono", *rec.EmployeeName)
}

func TestComputeEmployeePayroll_MonthlyWithoutFund(t *testing.T) {
	rec, err := ComputeEmployeePayroll(periodInput(t, rateEmployee("2200", employee.RateTypeMonthly, false)))
	require.NoError(t, err)

	assertDecimal(t, "300", rec.BaseSalary)
	assertDecimal(t, "37.5", rec.OvertimePay)
	assertDecimal(t, "337.5", rec.GrossPay)
	assertDecimal(t, "33.75", rec.TaxDeduction)
	assertDecimal(t, "0", rec.FundDeduction)
	assertDecimal(t, "6.25", rec.OtherDeductions)
	assertDecimal(t, "40", rec.TotalDeductions)
	assertDecimal(t, "297.5", rec.NetPay)
}

func TestComputeEmployeePayroll_NetPayMatchesRecordedAmounts(t *testing.T) {
	// 5 hours at 2.001 gives a gross of 10.005; clocking in at 18:00 costs
	// 600 late minutes, pushing net pay below zero.
	in := periodInput(t, rateEmployee("2.001", employee.RateTypeHourly, false))
	in.Attendance = []attendance.AttendanceRecord{
		record("2024-03-04", attendance.StatusLate, "", "", "18:00", "23:00"),
	}
	in.PeriodEnd = mustDate(t, "2024-03-04")

	rec, err := ComputeEmployeePayroll(in)
	require.NoError(t, err)

	assertDecimal(t, "10.01", rec.GrossPay)
	assertDecimal(t, "1", rec.TaxDeduction)
	assertDecimal(t, "20.01", rec.OtherDeductions)
	assertDecimal(t, "21.01", rec.TotalDeductions)
	assertDecimal(t, "-11", rec.NetPay)
	assert.True(t, rec.GrossPay.Sub(rec.TotalDeductions).Equal(rec.NetPay))
}

func TestComputeEmployeePayroll_Errors(t *testing.T) {
	zero := dec("0")
	tests := []struct {
		name    string
		mutate  func(in *EmployeePeriodInput)
		wantErr error
	}{
		{
			name:    "no employment rate",
			mutate:  func(in *EmployeePeriodInput) { in.Employee.Rate = nil },
			wantErr: payroll.ErrMissingOrInvalidRate,
		},
		{
			name:    "zero rate",
			mutate:  func(in *EmployeePeriodInput) { in.Employee.Rate = &zero },
			wantErr: payroll.ErrMissingOrInvalidRate,
		},
		{
			name:    "unknown rate type",
			mutate:  func(in *EmployeePeriodInput) { in.Employee.RateType = "weekly" },
			wantErr: payroll.ErrInvalidRateType,
		},
		{
			name:    "no attendance in period",
			mutate:  func(in *EmployeePeriodInput) { in.Attendance = nil },
			wantErr: payroll.ErrNoAttendanceInPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := periodInput(t, rateEmployee("10", employee.RateTypeHourly, false))
			tt.mutate(&in)

			_, err := ComputeEmployeePayroll(in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
