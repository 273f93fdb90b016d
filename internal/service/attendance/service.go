package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.ShiftRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.ShiftRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
	}
}

// RecordPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	date := req.ParsedDate()

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	shift, err := a.ShiftRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoShiftAssigned
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	record := attendance.AttendanceRecord{EmployeeID: req.EmployeeID, Date: date}
	if existing != nil {
		record = *existing
	}

	in, out := &record.AMIn, &record.AMOut
	if attendance.Slot(req.Slot) == attendance.SlotPM {
		in, out = &record.PMIn, &record.PMOut
	}

	punch := req.Time
	switch attendance.Direction(req.Direction) {
	case attendance.DirectionIn:
		if isPunched(*in) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		*in = &punch
	case attendance.DirectionOut:
		if !isPunched(*in) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		if isPunched(*out) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		*out = &punch
	}

	// Status follows the first clock-in of the day.
	firstIn := record.AMIn
	if !isPunched(firstIn) {
		firstIn = record.PMIn
	}
	if isPunched(firstIn) {
		status, err := DetermineStatus(shift, date, *firstIn)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.Status = status
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return mapAttendanceToResponse(saved), nil
}

func isPunched(value *string) bool {
	return value != nil && *value != "" && *value != attendance.EmptyPunch
}

func mapAttendanceToResponse(att attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		AMIn:       att.AMIn,
		AMOut:      att.AMOut,
		PMIn:       att.PMIn,
		PMOut:      att.PMOut,
		Status:     string(att.Status),
	}
}
