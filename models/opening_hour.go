package models

// OpeningHour is one (weekday, open, close) interval owned by an Activity.
// Overnight intervals (OpenAt > CloseAt) are stored as-is and simply never
// match a same-day visit window.
type OpeningHour struct {
	ID      int       `json:"id"`
	Weekday Weekday   `json:"weekday"`
	OpenAt  TimeOfDay `json:"openAt"`
	CloseAt TimeOfDay `json:"closeAt"`
}
