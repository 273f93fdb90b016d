package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
)

// ResolveTime combines a calendar date with a time of day. It returns nil for a
// missing punch: nil, blank, or exactly "00:00:00", which never means midnight.
func ResolveTime(date time.Time, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" || v == attendance.EmptyPunch {
		return nil, nil
	}

	tod, err := schedule.ParseTimeOfDay(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", payroll.ErrInvalidTimeOfDay, v)
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, date.Location())
	return &t, nil
}

// ResolveInterval returns the out timestamp, advanced by one day when it falls
// before in on the same nominal date (22:00 in, 06:00 out).
func ResolveInterval(in, out time.Time) time.Time {
	if out.Before(in) {
		return out.AddDate(0, 0, 1)
	}
	return out
}

// pairMinutes is the whole minutes between an in/out pair. Missing or
// unreadable punches yield zero.
func pairMinutes(date time.Time, in, out *string) int {
	start, err := ResolveTime(date, in)
	if err != nil || start == nil {
		return 0
	}
	end, err := ResolveTime(date, out)
	if err != nil || end == nil {
		return 0
	}
	return int(ResolveInterval(*start, *end).Sub(*start).Minutes())
}
