package recommend

import (
	"errors"
	"testing"

	"sights-api/models"

	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	candidates  []models.Activity
	err         error
	gotCategory string
	gotWeekday  models.Weekday
}

func (s *stubStore) GetCandidates(category string, weekday models.Weekday) ([]models.Activity, error) {
	s.gotCategory = category
	s.gotWeekday = weekday
	return s.candidates, s.err
}

func at(s string) models.TimeOfDay {
	t, err := models.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func candidate(id int, hoursSpent float64, openAt, closeAt string) models.Activity {
	return models.Activity{
		ID:         id,
		Name:       "activity",
		HoursSpent: hoursSpent,
		Category:   "shopping",
		OpeningHours: []models.OpeningHour{
			{Weekday: models.Monday, OpenAt: at(openAt), CloseAt: at(closeAt)},
		},
	}
}

func TestRecommendPassesFiltersToStore(t *testing.T) {
	store := &stubStore{}
	engine := NewEngine(store)

	_, err := engine.Recommend("shopping", models.Sunday, at("10:00"), at("11:00"))
	assert.NoError(t, err)
	assert.Equal(t, "shopping", store.gotCategory)
	assert.Equal(t, models.Sunday, store.gotWeekday)
}

func TestRecommendNoCandidates(t *testing.T) {
	engine := NewEngine(&stubStore{})

	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("11:00"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendSingleFit(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{candidate(1, 1, "10:00", "11:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("11:00"))
	assert.NoError(t, err)
	if assert.NotNil(t, match) {
		assert.Equal(t, 1, match.ID)
	}
}

func TestRecommendLongestDurationWins(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{
		candidate(1, 2, "10:00", "20:00"),
		candidate(2, 5, "10:00", "20:00"),
	}}
	engine := NewEngine(store)

	// Both fit in 10:00-15:00, the 5 hour visit exactly; longest wins.
	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("15:00"))
	assert.NoError(t, err)
	if assert.NotNil(t, match) {
		assert.Equal(t, 2, match.ID)
	}
}

func TestRecommendFallsBackWhenLongestDoesNotFit(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{
		candidate(1, 5, "10:00", "20:00"),
		candidate(2, 2, "10:00", "20:00"),
	}}
	engine := NewEngine(store)

	// Only 3 hours available: the 5 hour visit overruns end_at.
	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("13:00"))
	assert.NoError(t, err)
	if assert.NotNil(t, match) {
		assert.Equal(t, 2, match.ID)
	}
}

func TestRecommendTieBreakFirstCandidate(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{
		candidate(7, 2, "10:00", "20:00"),
		candidate(9, 2, "10:00", "20:00"),
	}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("15:00"))
	assert.NoError(t, err)
	if assert.NotNil(t, match) {
		assert.Equal(t, 7, match.ID)
	}
}

func TestRecommendRejectsVisitBeforeOpening(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{candidate(1, 1, "10:00", "20:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("09:30"), at("12:00"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendRejectsVisitPastClosing(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{candidate(1, 3, "10:00", "12:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("18:00"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendBoundaryEqualityMatches(t *testing.T) {
	// open_at == start_at and visit end == close_at == end_at.
	store := &stubStore{candidates: []models.Activity{candidate(1, 2, "10:00", "12:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("12:00"))
	assert.NoError(t, err)
	assert.NotNil(t, match)
}

func TestRecommendZeroDurationFitsAnyOpenWindow(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{candidate(1, 0, "10:00", "20:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("12:00"), at("12:30"))
	assert.NoError(t, err)
	assert.NotNil(t, match)
}

func TestRecommendStartAfterEndYieldsNothing(t *testing.T) {
	store := &stubStore{candidates: []models.Activity{candidate(1, 1, "00:00", "23:59")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("15:00"), at("10:00"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendOvernightIntervalNeverMatches(t *testing.T) {
	// open 22:00, close 02:00: naive same-day comparison rejects a 23:00 start.
	store := &stubStore{candidates: []models.Activity{candidate(1, 1, "22:00", "2:00")}}
	engine := NewEngine(store)

	match, err := engine.Recommend("shopping", models.Monday, at("23:00"), at("23:59"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendMatchesAcrossMultipleIntervals(t *testing.T) {
	split := models.Activity{
		ID:         1,
		HoursSpent: 1,
		OpeningHours: []models.OpeningHour{
			{Weekday: models.Monday, OpenAt: at("09:00"), CloseAt: at("13:00")},
			{Weekday: models.Monday, OpenAt: at("16:00"), CloseAt: at("20:00")},
		},
	}
	engine := NewEngine(&stubStore{candidates: []models.Activity{split}})

	match, err := engine.Recommend("shopping", models.Monday, at("17:00"), at("19:00"))
	assert.NoError(t, err)
	assert.NotNil(t, match)

	match, err = engine.Recommend("shopping", models.Monday, at("13:30"), at("15:00"))
	assert.NoError(t, err)
	assert.Nil(t, match)
}

func TestRecommendPropagatesStorageError(t *testing.T) {
	storeErr := errors.New("connection refused")
	engine := NewEngine(&stubStore{err: storeErr})

	_, err := engine.Recommend("shopping", models.Monday, at("10:00"), at("11:00"))
	assert.ErrorIs(t, err, storeErr)
}
