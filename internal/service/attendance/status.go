package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
)

// DetermineStatus classifies a clock-in against the shift start on the given
// date. For shifts starting at noon or later, a morning clock-in belongs to
// the next calendar day.
func DetermineStatus(shift schedule.Shift, date time.Time, timeIn string) (attendance.Status, error) {
	start, err := shift.Start()
	if err != nil {
		return "", fmt.Errorf("invalid shift start %q: %w", shift.StartTime, err)
	}
	in, err := schedule.ParseTimeOfDay(timeIn)
	if err != nil {
		return "", fmt.Errorf("invalid clock-in time %q: %w", timeIn, err)
	}

	scheduledIn := atTimeOfDay(date, start)
	clockIn := atTimeOfDay(date, in)
	if shift.IsOvernight() && in.Hour() < 12 {
		clockIn = clockIn.AddDate(0, 0, 1)
	}

	if clockIn.After(scheduledIn.Add(attendance.GracePeriod)) {
		return attendance.StatusLate, nil
	}
	return attendance.StatusPresent, nil
}

func atTimeOfDay(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}
