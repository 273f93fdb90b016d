package payroll

import "context"

type PayrollService interface {
	// RunPayroll computes and persists one record per payable employee.
	// When nothing can be paid it returns the skips together with ErrBatchEmpty.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)

	// PreviewPayroll computes one employee's record without persisting it.
	PreviewPayroll(ctx context.Context, req PreviewPayrollRequest) (PayrollRecordResponse, error)

	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	UpdatePayrollStatus(ctx context.Context, req UpdatePayrollStatusRequest) (PayrollRecordResponse, error)
}
