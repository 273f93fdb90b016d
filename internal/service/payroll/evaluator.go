package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
)

const (
	// StandardDayMinutes is the regular-time cap per day; anything beyond is overtime.
	StandardDayMinutes = 8 * 60

	// Payroll lateness is measured from a fixed 08:00 start, not the shift start.
	scheduleStartHour = 8
)

// EvaluateDay computes one day's contribution to the pay period. The shift is
// accepted for parity with the punch path but lateness uses the fixed 08:00
// baseline.
func EvaluateDay(record attendance.AttendanceRecord, shift schedule.Shift) payroll.AttendanceEvaluation {
	if !record.Status.CountsAsWorked() {
		return payroll.AttendanceEvaluation{}
	}

	amMinutes := pairMinutes(record.Date, record.AMIn, record.AMOut)
	pmMinutes := pairMinutes(record.Date, record.PMIn, record.PMOut)
	dayMinutes := amMinutes + pmMinutes
	if dayMinutes <= 0 {
		return payroll.AttendanceEvaluation{}
	}

	eval := payroll.AttendanceEvaluation{
		Counted:        true,
		WorkedMinutes:  dayMinutes,
		RegularMinutes: min(dayMinutes, StandardDayMinutes),
	}
	if dayMinutes > StandardDayMinutes {
		eval.OvertimeMinutes = dayMinutes - StandardDayMinutes
	}

	if in := firstClockIn(record); in != nil {
		scheduleStart := time.Date(record.Date.Year(), record.Date.Month(), record.Date.Day(),
			scheduleStartHour, 0, 0, 0, record.Date.Location())
		if in.After(scheduleStart.Add(attendance.GracePeriod)) {
			eval.Late = true
			eval.LateMinutes = int(in.Sub(scheduleStart).Minutes())
		}
	}

	return eval
}

// firstClockIn prefers the AM clock-in and falls back to PM.
func firstClockIn(record attendance.AttendanceRecord) *time.Time {
	if in, err := ResolveTime(record.Date, record.AMIn); err == nil && in != nil {
		return in
	}
	if in, err := ResolveTime(record.Date, record.PMIn); err == nil && in != nil {
		return in
	}
	return nil
}
