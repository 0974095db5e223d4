package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// TimeOfDay is a naive wall-clock time expressed as minutes since midnight.
// Values produced by AddHours may exceed 23:59 when a visit would run past
// midnight; comparisons stay plain integer comparisons on a single reference day.
type TimeOfDay int

// timeOfDayPattern accepts H:MM and HH:MM with hour 0-23 and minute 00-59.
var timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeOfDay parses "H:MM" or "HH:MM" into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time of day: %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return TimeOfDay(hour*60 + minute), nil
}

// AddHours adds a fractional number of hours, rounded to the nearest minute.
// The result is not wrapped at midnight.
func (t TimeOfDay) AddHours(hours float64) TimeOfDay {
	return t + TimeOfDay(math.Round(hours*60))
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
