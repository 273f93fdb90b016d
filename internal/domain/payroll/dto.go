package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	PaymentDate string   `json:"payment_date"`
	PayType     string   `json:"pay_type"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePeriod(r.PeriodStart, r.PeriodEnd)...)

	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.PayType, PayTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be one of regular, off_cycle, final"})
	}
	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	} else if validator.HasDuplicates(r.EmployeeIDs) {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain duplicates"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed bounds; only valid after Validate succeeds.
func (r *RunPayrollRequest) Period() (start, end, paymentDate time.Time) {
	start, _ = validator.IsValidDate(r.PeriodStart)
	end, _ = validator.IsValidDate(r.PeriodEnd)
	paymentDate, _ = validator.IsValidDate(r.PaymentDate)
	return start, end, paymentDate
}

type SkippedEmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type RunPayrollResponse struct {
	RunID   string                    `json:"run_id"`
	Records []PayrollRecordResponse   `json:"records"`
	Skipped []SkippedEmployeeResponse `json:"skipped"`
	Count   int                       `json:"count"`
}

// SkippedDetails maps employee id to skip reason for error payloads.
func (r RunPayrollResponse) SkippedDetails() map[string]string {
	details := make(map[string]string, len(r.Skipped))
	for _, s := range r.Skipped {
		details[s.EmployeeID] = s.Reason
	}
	return details
}

type PreviewPayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *PreviewPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validatePeriod(r.PeriodStart, r.PeriodEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *PreviewPayrollRequest) Period() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.PeriodStart)
	end, _ = validator.IsValidDate(r.PeriodEnd)
	return start, end
}

func validatePeriod(startStr, endStr string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(startStr)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(endStr)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	return errs
}

// ========== STATUS DTOs ==========

type UpdatePayrollStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdatePayrollStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, PayrollStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, approved, paid, rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYROLL RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID              string          `json:"id,omitempty"`
	RunID           string          `json:"run_id,omitempty"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeCode    string          `json:"employee_code,omitempty"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PaymentDate     string          `json:"payment_date,omitempty"`
	PayType         string          `json:"pay_type,omitempty"`
	RateType        string          `json:"rate_type"`
	Rate            decimal.Decimal `json:"rate"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	FundDeduction   decimal.Decimal `json:"fund_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	DaysWorked      int             `json:"days_worked"`
	DaysAbsent      int             `json:"days_absent"`
	DaysLate        int             `json:"days_late"`
	LateMinutes     int             `json:"late_minutes"`
	Status          string          `json:"status"`
	PaidAt          *string         `json:"paid_at,omitempty"`
}

type PayrollFilter struct {
	EmployeeID  *string `json:"employee_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
	SortBy      string  `json:"sort_by"`
	SortOrder   string  `json:"sort_order"`
}

var payrollSortColumns = []string{"period_start", "payment_date", "net_pay", "created_at"}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, PayrollStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, approved, paid, rejected"})
	}
	if f.PeriodStart != nil {
		if _, ok := validator.IsValidDate(*f.PeriodStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.PeriodEnd != nil {
		if _, ok := validator.IsValidDate(*f.PeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, payrollSortColumns) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "unsupported sort column"})
	}
	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize fills paging and sorting defaults.
func (f *PayrollFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// ToResponse maps a record onto its API shape.
func (r PayrollRecord) ToResponse() PayrollRecordResponse {
	var paidAtStr *string
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	paymentDate := ""
	if !r.PaymentDate.IsZero() {
		paymentDate = r.PaymentDate.Format(dateLayout)
	}

	return PayrollRecordResponse{
		ID:              r.ID,
		RunID:           r.RunID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    employeeName,
		EmployeeCode:    employeeCode,
		PeriodStart:     r.PeriodStart.Format(dateLayout),
		PeriodEnd:       r.PeriodEnd.Format(dateLayout),
		PaymentDate:     paymentDate,
		PayType:         string(r.PayType),
		RateType:        string(r.RateType),
		Rate:            r.Rate,
		BaseSalary:      r.BaseSalary,
		RegularHours:    r.RegularHours,
		OvertimeHours:   r.OvertimeHours,
		OvertimePay:     r.OvertimePay,
		GrossPay:        r.GrossPay,
		TaxDeduction:    r.TaxDeduction,
		FundDeduction:   r.FundDeduction,
		OtherDeductions: r.OtherDeductions,
		TotalDeductions: r.TotalDeductions,
		NetPay:          r.NetPay,
		DaysWorked:      r.DaysWorked,
		DaysAbsent:      r.DaysAbsent,
		DaysLate:        r.DaysLate,
		LateMinutes:     r.LateMinutes,
		Status:          string(r.Status),
		PaidAt:          paidAtStr,
	}
}

func ToRecordResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, r.ToResponse())
	}
	return result
}
