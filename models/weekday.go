package models

import "fmt"

// Weekday is the two-letter recurrence code used by the seed data and the API.
type Weekday string

const (
	Monday    Weekday = "mo"
	Tuesday   Weekday = "tu"
	Wednesday Weekday = "we"
	Thursday  Weekday = "th"
	Friday    Weekday = "fr"
	Saturday  Weekday = "sa"
	Sunday    Weekday = "su"
)

var weekdays = map[Weekday]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {},
	Friday: {}, Saturday: {}, Sunday: {},
}

// ParseWeekday validates a raw weekday code.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	if _, ok := weekdays[w]; !ok {
		return "", fmt.Errorf("invalid weekday: %q", s)
	}
	return w, nil
}
