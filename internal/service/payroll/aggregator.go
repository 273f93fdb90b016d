package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// periodAccumulator is threaded by value through the day loop.
type periodAccumulator struct {
	regularMinutes  int
	overtimeMinutes int
	daysWorked      int
	daysLate        int
	lateMinutes     int
}

func (a periodAccumulator) add(eval payroll.AttendanceEvaluation) periodAccumulator {
	if !eval.Counted {
		return a
	}
	a.regularMinutes += eval.RegularMinutes
	a.overtimeMinutes += eval.OvertimeMinutes
	a.daysWorked++
	if eval.Late {
		a.daysLate++
		a.lateMinutes += eval.LateMinutes
	}
	return a
}

// AggregatePeriod folds the daily evaluations of every record dated within
// [start, end]. It returns ErrNoAttendanceInPeriod when no day counts as worked.
func AggregatePeriod(records []attendance.AttendanceRecord, start, end time.Time, shift schedule.Shift) (payroll.PeriodAttendanceSummary, error) {
	first, last := civilDate(start), civilDate(end)

	acc := periodAccumulator{}
	for _, rec := range records {
		d := civilDate(rec.Date)
		if d.Before(first) || d.After(last) {
			continue
		}
		acc = acc.add(EvaluateDay(rec, shift))
	}

	workingDays := CountWorkingDays(start, end)
	summary := payroll.PeriodAttendanceSummary{
		RegularMinutes:   acc.regularMinutes,
		OvertimeMinutes:  acc.overtimeMinutes,
		RegularHours:     minutesToHours(acc.regularMinutes),
		OvertimeHours:    minutesToHours(acc.overtimeMinutes),
		DaysWorked:       acc.daysWorked,
		DaysAbsent:       max(0, workingDays-acc.daysWorked),
		DaysLate:         acc.daysLate,
		LateMinutes:      acc.lateMinutes,
		TotalWorkingDays: workingDays,
	}

	if summary.DaysWorked == 0 {
		return summary, payroll.ErrNoAttendanceInPeriod
	}
	return summary, nil
}

// CountWorkingDays counts Monday to Friday dates in [start, end].
func CountWorkingDays(start, end time.Time) int {
	count := 0
	for d, last := civilDate(start), civilDate(end); !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
}

// civilDate drops the clock and zone so dates compare by calendar day.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
