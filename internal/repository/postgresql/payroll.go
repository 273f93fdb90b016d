package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRecordColumns = `
	pr.id, pr.run_id, pr.employee_id, pr.period_start, pr.period_end, pr.payment_date, pr.pay_type,
	pr.rate_type, pr.rate, pr.base_salary, pr.regular_hours, pr.overtime_hours, pr.overtime_pay,
	pr.gross_pay, pr.tax_deduction, pr.fund_deduction, pr.other_deductions, pr.total_deductions,
	pr.net_pay, pr.days_worked, pr.days_absent, pr.days_late, pr.late_minutes,
	pr.status, pr.paid_at, pr.created_at, pr.updated_at,
	e.full_name AS employee_name, e.employee_code`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.RunID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.PaymentDate, &rec.PayType,
		&rec.RateType, &rec.Rate, &rec.BaseSalary, &rec.RegularHours, &rec.OvertimeHours, &rec.OvertimePay,
		&rec.GrossPay, &rec.TaxDeduction, &rec.FundDeduction, &rec.OtherDeductions, &rec.TotalDeductions,
		&rec.NetPay, &rec.DaysWorked, &rec.DaysAbsent, &rec.DaysLate, &rec.LateMinutes,
		&rec.Status, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

// CreatePayrollRecords implements payroll.PayrollRepository. All inserts are
// sent as one batch inside a single transaction.
func (r *payrollRepository) CreatePayrollRecords(ctx context.Context, records []payroll.PayrollRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO payroll_records (
			id, run_id, employee_id, period_start, period_end, payment_date, pay_type,
			rate_type, rate, base_salary, regular_hours, overtime_hours, overtime_pay,
			gross_pay, tax_deduction, fund_deduction, other_deductions, total_deductions,
			net_pay, days_worked, days_absent, days_late, late_minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(query,
				rec.ID, rec.RunID, rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd, rec.PaymentDate, rec.PayType,
				rec.RateType, rec.Rate, rec.BaseSalary, rec.RegularHours, rec.OvertimeHours, rec.OvertimePay,
				rec.GrossPay, rec.TaxDeduction, rec.FundDeduction, rec.OtherDeductions, rec.TotalDeductions,
				rec.NetPay, rec.DaysWorked, rec.DaysAbsent, rec.DaysLate, rec.LateMinutes, rec.Status,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for _, rec := range records {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to create payroll record for employee %s: %w", rec.EmployeeID, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to close payroll batch: %w", err)
		}
		return nil
	})
}

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1 = 1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PeriodStart != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_start >= $%d::date", argIdx)
		args = append(args, *filter.PeriodStart)
		argIdx++
	}
	if filter.PeriodEnd != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_end <= $%d::date", argIdx)
		args = append(args, *filter.PeriodEnd)
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Sort
	sortColumn := "pr.created_at"
	allowedColumns := map[string]string{
		"created_at":   "pr.created_at",
		"period_start": "pr.period_start",
		"payment_date": "pr.payment_date",
		"net_pay":      "pr.net_pay",
	}
	if col, ok := allowedColumns[filter.SortBy]; ok {
		sortColumn = col
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY %s %s, pr.id
		LIMIT $%d OFFSET $%d
	`, payrollRecordColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) UpdatePayrollStatus(ctx context.Context, id string, status payroll.PayrollStatus, paidAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, paid_at = COALESCE($3, paid_at), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, paidAt)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
