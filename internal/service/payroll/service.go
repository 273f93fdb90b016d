package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      schedule.ShiftRepository
	workers        int
	logger         *slog.Logger
	now            func() time.Time
	newID          func() (string, error)
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo schedule.ShiftRepository,
	workers int,
	logger *slog.Logger,
) payroll.PayrollService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		workers:        workers,
		logger:         logger,
		now:            time.Now,
		newID:          newUUIDv7,
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ========== PAYROLL RUN ==========

type employeeOutcome struct {
	employeeID string
	record     payroll.PayrollRecord
	err        error
}

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}
	start, end, paymentDate := req.Period()
	payType := payroll.PayType(req.PayType)

	runID, err := s.newID()
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to generate run id: %w", err)
	}
	logger := s.logger.With(slog.String("run_id", runID))
	logger.Info("Payroll run started",
		"employees", len(req.EmployeeIDs),
		"period_start", req.PeriodStart,
		"period_end", req.PeriodEnd,
		"pay_type", req.PayType,
	)

	// Each goroutine owns one slot, so no locking is needed. A data-store
	// failure cancels the remaining workers and aborts the run.
	outcomes := make([]employeeOutcome, len(req.EmployeeIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, employeeID := range req.EmployeeIDs {
		g.Go(func() error {
			record, err := s.computeForEmployee(gctx, employeeID, start, end, paymentDate, payType)
			if err != nil && !isSkippable(err) {
				return fmt.Errorf("employee %s: %w", employeeID, err)
			}
			outcomes[i] = employeeOutcome{employeeID: employeeID, record: record, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Payroll run aborted", "error", err)
		return payroll.RunPayrollResponse{}, fmt.Errorf("payroll run aborted: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	result, err := s.foldOutcomes(runID, outcomes)
	if err != nil {
		return payroll.RunPayrollResponse{}, err
	}
	for _, skip := range result.Skipped {
		logger.Warn("Payroll employee skipped", "employee_id", skip.EmployeeID, "reason", skip.Reason)
	}

	resp := toRunResponse(result)
	if len(result.Records) == 0 {
		logger.Warn("Payroll run produced no records", "skipped", len(result.Skipped))
		return resp, payroll.ErrBatchEmpty
	}

	if err := s.payrollRepo.CreatePayrollRecords(ctx, result.Records); err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to persist payroll run: %w", err)
	}

	logger.Info("Payroll run completed", "records", len(result.Records), "skipped", len(result.Skipped))
	return resp, nil
}

// foldOutcomes splits per-employee outcomes into records and skips, keeping
// request order.
func (s *PayrollServiceImpl) foldOutcomes(runID string, outcomes []employeeOutcome) (payroll.RunResult, error) {
	result := payroll.RunResult{RunID: runID}
	createdAt := s.now()

	for _, o := range outcomes {
		if o.err != nil {
			result.Skipped = append(result.Skipped, payroll.SkippedEmployee{
				EmployeeID: o.employeeID,
				Reason:     o.err.Error(),
				Err:        o.err,
			})
			continue
		}

		id, err := s.newID()
		if err != nil {
			return payroll.RunResult{}, fmt.Errorf("failed to generate payroll record id: %w", err)
		}
		record := o.record
		record.ID = id
		record.RunID = runID
		record.CreatedAt = createdAt
		record.UpdatedAt = createdAt
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// isSkippable reports whether err excludes one employee from a run without
// affecting the others.
func isSkippable(err error) bool {
	return errors.Is(err, payroll.ErrEmployeeNotFound) ||
		errors.Is(err, payroll.ErrMissingOrInvalidRate) ||
		errors.Is(err, payroll.ErrInvalidRateType) ||
		errors.Is(err, payroll.ErrNoAttendanceInPeriod)
}

// computeForEmployee loads one employee's inputs and runs the engine. Domain
// errors become skips; anything else is a data-store failure.
func (s *PayrollServiceImpl) computeForEmployee(
	ctx context.Context,
	employeeID string,
	start, end, paymentDate time.Time,
	payType payroll.PayType,
) (payroll.PayrollRecord, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollRecord{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to load employee: %w", err)
	}

	if rate, ok := emp.RateInfo(); !ok || !rate.Rate.IsPositive() {
		return payroll.PayrollRecord{}, payroll.ErrMissingOrInvalidRate
	}

	shift, err := s.shiftRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil && !errors.Is(err, schedule.ErrShiftNotFound) {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to load shift: %w", err)
	}

	records, err := s.attendanceRepo.ListByEmployeeAndPeriod(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	return ComputeEmployeePayroll(EmployeePeriodInput{
		Employee:    emp,
		Shift:       shift,
		Attendance:  records,
		PeriodStart: start,
		PeriodEnd:   end,
		PaymentDate: paymentDate,
		PayType:     payType,
	})
}

func toRunResponse(result payroll.RunResult) payroll.RunPayrollResponse {
	skipped := make([]payroll.SkippedEmployeeResponse, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, payroll.SkippedEmployeeResponse{EmployeeID: s.EmployeeID, Reason: s.Reason})
	}
	return payroll.RunPayrollResponse{
		RunID:   result.RunID,
		Records: payroll.ToRecordResponses(result.Records),
		Skipped: skipped,
		Count:   len(result.Records),
	}
}

// ========== PREVIEW ==========

func (s *PayrollServiceImpl) PreviewPayroll(ctx context.Context, req payroll.PreviewPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	start, end := req.Period()

	record, err := s.computeForEmployee(ctx, req.EmployeeID, start, end, time.Time{}, "")
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return record.ToResponse(), nil
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return record.ToResponse(), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	filter.Normalize()
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, totalCount, err := s.payrollRepo.ListPayrollRecords(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	return payroll.ListPayrollRecordResponse{
		Data:       payroll.ToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) UpdatePayrollStatus(ctx context.Context, req payroll.UpdatePayrollStatusRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	current, err := s.payrollRepo.GetPayrollRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	next := payroll.PayrollStatus(req.Status)
	if !current.Status.CanTransitionTo(next) {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("%w: %s to %s", payroll.ErrInvalidStatusTransition, current.Status, next)
	}

	var paidAt *time.Time
	if next == payroll.PayrollStatusPaid {
		now := s.now().UTC()
		paidAt = &now
	}

	if err := s.payrollRepo.UpdatePayrollStatus(ctx, req.ID, next, paidAt); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	s.logger.Info("Payroll record status updated", "id", req.ID, "from", current.Status, "to", next)
	return s.GetPayrollRecord(ctx, req.ID)
}
