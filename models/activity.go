package models

import "time"

// Activity is a tourist point of interest. HoursSpent is the visit duration
// in hours (fractional allowed). OpeningHours is populated only by lookups
// that join against the opening_hours table.
type Activity struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	HoursSpent   float64       `json:"hoursSpent"`
	Category     string        `json:"category"`
	Location     string        `json:"location"`
	District     string        `json:"district"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	OpeningHours []OpeningHour `json:"openingHours,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	ModifiedAt   time.Time     `json:"modifiedAt"`
}
