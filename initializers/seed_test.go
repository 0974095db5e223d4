package initializers

import (
	"testing"

	"sights-api/models"

	"github.com/stretchr/testify/assert"
)

func validEntry() seedEntry {
	return seedEntry{
		Name:       "Museo del Prado",
		HoursSpent: 3,
		Category:   "cultural",
		Location:   "indoors",
		District:   "Retiro",
		LatLng:     []float64{40.413782, -3.692127},
		OpeningHours: map[string][]string{
			"mo": {"10:00-20:00"},
			"tu": {},
			"su": {"10:00-19:00"},
		},
	}
}

func TestSeedActivitiesConversion(t *testing.T) {
	activities, err := seedActivities([]seedEntry{validEntry()})
	assert.NoError(t, err)
	if !assert.Len(t, activities, 1) {
		return
	}

	a := activities[0]
	assert.Equal(t, "Museo del Prado", a.Name)
	assert.Equal(t, 40.413782, a.Latitude)
	assert.Equal(t, -3.692127, a.Longitude)
	// Empty weekday lists mean closed that day and produce no interval.
	assert.Len(t, a.OpeningHours, 2)

	byDay := map[models.Weekday]models.OpeningHour{}
	for _, oh := range a.OpeningHours {
		byDay[oh.Weekday] = oh
	}
	mo := byDay[models.Monday]
	assert.Equal(t, "10:00", mo.OpenAt.String())
	assert.Equal(t, "20:00", mo.CloseAt.String())
	su := byDay[models.Sunday]
	assert.Equal(t, "19:00", su.CloseAt.String())
}

func TestSeedActivitiesMissingAttribute(t *testing.T) {
	e := validEntry()
	e.District = ""
	_, err := seedActivities([]seedEntry{e})
	assert.ErrorContains(t, err, "missing required attribute")
}

func TestSeedActivitiesBadLatLng(t *testing.T) {
	e := validEntry()
	e.LatLng = []float64{40.4}
	_, err := seedActivities([]seedEntry{e})
	assert.ErrorContains(t, err, "latlng")
}

func TestSeedActivitiesNegativeDuration(t *testing.T) {
	e := validEntry()
	e.HoursSpent = -1
	_, err := seedActivities([]seedEntry{e})
	assert.ErrorContains(t, err, "hours_spent")
}

func TestSeedActivitiesUnknownWeekday(t *testing.T) {
	e := validEntry()
	e.OpeningHours["monday"] = []string{"10:00-20:00"}
	_, err := seedActivities([]seedEntry{e})
	assert.ErrorContains(t, err, "invalid weekday")
}

func TestSeedActivitiesMalformedInterval(t *testing.T) {
	e := validEntry()
	e.OpeningHours["mo"] = []string{"10:00"}
	_, err := seedActivities([]seedEntry{e})
	assert.ErrorContains(t, err, "malformed interval")
}

func TestSeedActivitiesEmptyInput(t *testing.T) {
	activities, err := seedActivities(nil)
	assert.NoError(t, err)
	assert.Empty(t, activities)
}
