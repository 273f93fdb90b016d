package payroll

import (
	"testing"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

var dayShift = schedule.Shift{ID: "shift-day", Name: "Day", StartTime: "08:00", EndTime: "17:00"}

func record(date string, status attendance.Status, amIn, amOut, pmIn, pmOut string) attendance.AttendanceRecord {
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	d, _ := timeParseDate(date)
	return attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		Date:       d,
		AMIn:       opt(amIn),
		AMOut:      opt(amOut),
		PMIn:       opt(pmIn),
		PMOut:      opt(pmOut),
		Status:     status,
	}
}

func TestEvaluateDay(t *testing.T) {
	tests := []struct {
		name string
		rec  attendance.AttendanceRecord
		want payroll.AttendanceEvaluation
	}{
		{
			name: "regular day split across AM and PM",
			rec:  record("2024-03-04", attendance.StatusPresent, "08:00", "12:00", "13:00", "17:00"),
			want: payroll.AttendanceEvaluation{Counted: true, WorkedMinutes: 480, RegularMinutes: 480},
		},
		{
			name: "overnight shift crosses midnight",
			rec:  record("2024-03-04", attendance.StatusPresent, "22:00", "06:00", "", ""),
			want: payroll.AttendanceEvaluation{Counted: true, WorkedMinutes: 480, RegularMinutes: 480, Late: true, LateMinutes: 840},
		},
		{
			name: "overtime on combined AM and PM total",
			rec:  record("2024-03-04", attendance.StatusPresent, "07:00", "16:00", "17:00", "19:00"),
			want: payroll.AttendanceEvaluation{Counted: true, WorkedMinutes: 660, RegularMinutes: 480, OvertimeMinutes: 180},
		},
		{
			name: "absent status contributes nothing",
			rec:  record("2024-03-04", attendance.StatusAbsent, "08:00", "17:00", "", ""),
			want: payroll.AttendanceEvaluation{},
		},
		{
			name: "on leave status contributes nothing",
			rec:  record("2024-03-04", attendance.StatusOnLeave, "", "", "", ""),
			want: payroll.AttendanceEvaluation{},
		},
		{
			name: "status without worked time is not counted",
			rec:  record("2024-03-04", attendance.StatusLate, "09:00", "", "", ""),
			want: payroll.AttendanceEvaluation{},
		},
		{
			name: "sentinel punches are treated as absent",
			rec:  record("2024-03-04", attendance.StatusPresent, "00:00:00", "00:00:00", "", ""),
			want: payroll.AttendanceEvaluation{},
		},
		{
			name: "PM only clock in used for lateness",
			rec:  record("2024-03-04", attendance.StatusLate, "", "", "13:00", "17:00"),
			want: payroll.AttendanceEvaluation{Counted: true, WorkedMinutes: 240, RegularMinutes: 240, Late: true, LateMinutes: 300},
		},
		{
			name: "AM clock in preferred over PM",
			rec:  record("2024-03-04", attendance.StatusPresent, "08:10", "12:00", "13:00", "17:00"),
			want: payroll.AttendanceEvaluation{Counted: true, WorkedMinutes: 470, RegularMinutes: 470},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateDay(tt.rec, dayShift))
		})
	}
}

func TestEvaluateDay_GraceBoundary(t *testing.T) {
	onBoundary := record("2024-03-04", attendance.StatusPresent, "08:15:00", "17:00", "", "")
	eval := EvaluateDay(onBoundary, dayShift)
	assert.False(t, eval.Late)
	assert.Zero(t, eval.LateMinutes)

	oneSecondLate := record("2024-03-04", attendance.StatusPresent, "08:15:01", "17:00", "", "")
	eval = EvaluateDay(oneSecondLate, dayShift)
	assert.True(t, eval.Late)
	// Measured from 08:00, not from the end of the grace period.
	assert.Equal(t, 15, eval.LateMinutes)

	halfHour := record("2024-03-04", attendance.StatusLate, "08:30", "17:00", "", "")
	assert.Equal(t, 30, EvaluateDay(halfHour, dayShift).LateMinutes)
}

func TestEvaluateDay_IgnoresShiftStartForLateness(t *testing.T) {
	nightShift := schedule.Shift{ID: "shift-night", StartTime: "22:00", EndTime: "06:00"}
	rec := record("2024-03-04", attendance.StatusPresent, "08:05", "16:05", "", "")

	eval := EvaluateDay(rec, nightShift)
	assert.False(t, eval.Late)
	assert.Equal(t, 480, eval.WorkedMinutes)
}
