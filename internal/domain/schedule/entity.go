package schedule

import "time"

// Shift is the work schedule assigned to an employee. StartTime and EndTime are
// times of day ("22:00" or "22:00:00"); EndTime before StartTime means the shift
// crosses midnight.
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Start parses StartTime into a time on the zero date.
func (s Shift) Start() (time.Time, error) {
	return ParseTimeOfDay(s.StartTime)
}

// IsOvernight reports whether the shift starts at noon or later, in which case
// morning punches belong to the following calendar day.
func (s Shift) IsOvernight() bool {
	start, err := s.Start()
	if err != nil {
		return false
	}
	return start.Hour() >= 12
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay accepts HH:MM:SS or HH:MM.
func ParseTimeOfDay(value string) (time.Time, error) {
	var err error
	for _, layout := range timeOfDayLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
