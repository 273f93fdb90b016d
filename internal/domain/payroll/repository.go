package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// CreatePayrollRecords writes all records atomically; either every record is stored or none.
	CreatePayrollRecords(ctx context.Context, records []PayrollRecord) error
	GetPayrollRecordByID(ctx context.Context, id string) (PayrollRecord, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	UpdatePayrollStatus(ctx context.Context, id string, status PayrollStatus, paidAt *time.Time) error
}
