package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
)

// schemaStatements create the tables the payroll engine reads and writes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS shifts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		shift_id UUID REFERENCES shifts(id),
		employee_code VARCHAR(50) NOT NULL UNIQUE,
		full_name VARCHAR(255) NOT NULL,
		employment_status VARCHAR(20) NOT NULL DEFAULT 'active',
		rate NUMERIC(15,2),
		rate_type VARCHAR(10) CHECK (rate_type IN ('hourly', 'daily', 'monthly', 'annual')),
		fund_member BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id UUID NOT NULL REFERENCES employees(id),
		date DATE NOT NULL,
		am_in VARCHAR(8),
		am_out VARCHAR(8),
		pm_in VARCHAR(8),
		pm_out VARCHAR(8),
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uk_attendance_employee_date UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_records (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL,
		employee_id UUID NOT NULL REFERENCES employees(id),
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		payment_date DATE NOT NULL,
		pay_type VARCHAR(20) NOT NULL,
		rate_type VARCHAR(10) NOT NULL,
		rate NUMERIC(15,2) NOT NULL,
		base_salary NUMERIC(15,2) NOT NULL,
		regular_hours NUMERIC(10,2) NOT NULL,
		overtime_hours NUMERIC(10,2) NOT NULL,
		overtime_pay NUMERIC(15,2) NOT NULL,
		gross_pay NUMERIC(15,2) NOT NULL,
		tax_deduction NUMERIC(15,2) NOT NULL,
		fund_deduction NUMERIC(15,2) NOT NULL,
		other_deductions NUMERIC(15,2) NOT NULL,
		total_deductions NUMERIC(15,2) NOT NULL,
		net_pay NUMERIC(15,2) NOT NULL,
		days_worked INT NOT NULL,
		days_absent INT NOT NULL,
		days_late INT NOT NULL,
		late_minutes INT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payroll_records_run ON payroll_records (run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payroll_records_employee_period ON payroll_records (employee_id, period_start)`,
}

// EnsureSchema creates any missing payroll tables.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
