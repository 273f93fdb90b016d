package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func strPtr(s string) *string { return &s }

func TestEmployeeRepository_GetByID(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	shiftID := setup.insertShift(t, "Day", "08:00", "17:00")
	paidID := setup.insertEmployee(t, "E-001", &shiftID, "1760.00", "monthly", true)
	unpaidID := setup.insertEmployee(t, "E-002", nil, "", "", false)

	emp, err := repo.GetByID(ctx, paidID)
	require.NoError(t, err)
	assert.Equal(t, "E-001", emp.EmployeeCode)
	assert.Equal(t, employee.RateTypeMonthly, emp.RateType)
	assert.True(t, emp.FundMember)
	require.NotNil(t, emp.ShiftID)
	assert.Equal(t, shiftID, *emp.ShiftID)
	rate, ok := emp.RateInfo()
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1760").Equal(rate.Rate))

	emp, err = repo.GetByID(ctx, unpaidID)
	require.NoError(t, err)
	_, ok = emp.RateInfo()
	assert.False(t, ok)

	_, err = repo.GetByID(ctx, newID(t))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_GetByID_MalformedID(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	for _, id := range []string{"emp-x", "", "1234"} {
		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound, id)
	}
}

func TestShiftRepository_GetByEmployeeID(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewShiftRepository(setup.DB)

	shiftID := setup.insertShift(t, "Night", "22:00", "06:00")
	withShift := setup.insertEmployee(t, "E-010", &shiftID, "10", "hourly", false)
	withoutShift := setup.insertEmployee(t, "E-011", nil, "10", "hourly", false)

	shift, err := repo.GetByEmployeeID(ctx, withShift)
	require.NoError(t, err)
	assert.Equal(t, "Night", shift.Name)
	assert.Equal(t, "22:00:00", shift.StartTime)
	assert.True(t, shift.IsOvernight())

	byID, err := repo.GetByID(ctx, shiftID)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, byID.ID)

	_, err = repo.GetByEmployeeID(ctx, withoutShift)
	assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
}

func TestAttendanceRepository_UpsertAndList(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)
	empID := setup.insertEmployee(t, "E-020", nil, "10", "hourly", false)

	missing, err := repo.GetByEmployeeAndDate(ctx, empID, date("2024-03-04"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.Upsert(ctx, attendance.AttendanceRecord{
		EmployeeID: empID,
		Date:       date("2024-03-04"),
		AMIn:       strPtr("08:00"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.AMOut = strPtr("12:00")
	created.Status = attendance.StatusLate
	updated, err := repo.Upsert(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	require.NotNil(t, updated.AMOut)
	assert.Equal(t, "12:00", *updated.AMOut)
	assert.Equal(t, attendance.StatusLate, updated.Status)

	_, err = repo.Upsert(ctx, attendance.AttendanceRecord{
		EmployeeID: empID,
		Date:       date("2024-03-20"),
		AMIn:       strPtr("08:00"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	records, err := repo.ListByEmployeeAndPeriod(ctx, empID, date("2024-03-01"), date("2024-03-15"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-04", records[0].Date.Format("2006-01-02"))
}

func payrollRecord(t *testing.T, runID, employeeID string, net string) payroll.PayrollRecord {
	d := decimal.RequireFromString
	return payroll.PayrollRecord{
		ID:              newID(t),
		RunID:           runID,
		EmployeeID:      employeeID,
		PeriodStart:     date("2024-03-01"),
		PeriodEnd:       date("2024-03-15"),
		PaymentDate:     date("2024-03-20"),
		PayType:         payroll.PayTypeRegular,
		RateType:        employee.RateTypeHourly,
		Rate:            d("10"),
		BaseSalary:      d("800"),
		RegularHours:    d("80"),
		OvertimeHours:   d("5"),
		OvertimePay:     d("75"),
		GrossPay:        d("875"),
		TaxDeduction:    d("87.5"),
		FundDeduction:   d("0"),
		OtherDeductions: d("0"),
		TotalDeductions: d("87.5"),
		NetPay:          d(net),
		DaysWorked:      10,
		Status:          payroll.PayrollStatusPending,
	}
}

func TestPayrollRepository_CreateListAndUpdate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	empA := setup.insertEmployee(t, "E-030", nil, "10", "hourly", false)
	empB := setup.insertEmployee(t, "E-031", nil, "10", "hourly", false)
	runID := newID(t)
	recA := payrollRecord(t, runID, empA, "787.5")
	recB := payrollRecord(t, runID, empB, "700")

	require.NoError(t, repo.CreatePayrollRecords(ctx, []payroll.PayrollRecord{recA, recB}))

	got, err := repo.GetPayrollRecordByID(ctx, recA.ID)
	require.NoError(t, err)
	assert.Equal(t, runID, got.RunID)
	assert.True(t, decimal.RequireFromString("787.5").Equal(got.NetPay))
	assert.Equal(t, payroll.PayrollStatusPending, got.Status)
	require.NotNil(t, got.EmployeeCode)
	assert.Equal(t, "E-030", *got.EmployeeCode)

	list, total, err := repo.ListPayrollRecords(ctx, payroll.PayrollFilter{
		Page: 1, Limit: 10, SortBy: "net_pay", SortOrder: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, recB.ID, list[0].ID)

	list, total, err = repo.ListPayrollRecords(ctx, payroll.PayrollFilter{EmployeeID: &empA, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	paidAt := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdatePayrollStatus(ctx, recA.ID, payroll.PayrollStatusPaid, &paidAt))
	got, err = repo.GetPayrollRecordByID(ctx, recA.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
	assert.True(t, paidAt.Equal(*got.PaidAt))

	_, err = repo.GetPayrollRecordByID(ctx, newID(t))
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	assert.ErrorIs(t, repo.UpdatePayrollStatus(ctx, newID(t), payroll.PayrollStatusApproved, nil), payroll.ErrPayrollRecordNotFound)
}

func TestPayrollRepository_CreateIsAtomic(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)

	empA := setup.insertEmployee(t, "E-040", nil, "10", "hourly", false)
	runID := newID(t)
	good := payrollRecord(t, runID, empA, "787.5")
	// Unknown employee violates the foreign key and must roll back the whole batch.
	bad := payrollRecord(t, runID, newID(t), "700")

	err := repo.CreatePayrollRecords(ctx, []payroll.PayrollRecord{good, bad})
	require.Error(t, err)

	_, err = repo.GetPayrollRecordByID(ctx, good.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestWithTransaction_JoinsContextTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(setup.DB)
	empA := setup.insertEmployee(t, "E-050", nil, "10", "hourly", false)
	rec := payrollRecord(t, newID(t), empA, "787.5")

	tx, err := setup.DB.BeginTx(ctx)
	require.NoError(t, err)
	txCtx := postgresql.WithTx(ctx, tx)

	require.NoError(t, repo.CreatePayrollRecords(txCtx, []payroll.PayrollRecord{rec}))
	_, err = repo.GetPayrollRecordByID(txCtx, rec.ID)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(ctx))
	_, err = repo.GetPayrollRecordByID(ctx, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	assert.ErrorIs(t, postgresql.WithTransaction(ctx, setup.DB, func(pgx.Tx) error { return pgx.ErrTxClosed }), pgx.ErrTxClosed)
}
