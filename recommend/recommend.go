// Package recommend selects the single best activity for a visit window.
//
// Matching is a pure in-memory computation over weekday-scoped candidates:
// an activity fits when one of its opening intervals admits a visit that
// starts at startAt, lasts the activity's required duration, and finishes by
// both the interval's closing time and the caller's endAt. Among fits the
// longest duration wins.
package recommend

import "sights-api/models"

// CandidateStore supplies activities of a category that are open at some
// point on the given weekday, each carrying only that weekday's intervals.
type CandidateStore interface {
	GetCandidates(category string, weekday models.Weekday) ([]models.Activity, error)
}

type Engine struct {
	store CandidateStore
}

func NewEngine(store CandidateStore) *Engine {
	return &Engine{store: store}
}

// Recommend returns the matching activity with the longest visit duration,
// or nil when nothing fits. Ties on duration go to the first candidate in
// store order. Storage errors are propagated untouched.
func (e *Engine) Recommend(category string, weekday models.Weekday, startAt, endAt models.TimeOfDay) (*models.Activity, error) {
	candidates, err := e.store.GetCandidates(category, weekday)
	if err != nil {
		return nil, err
	}

	var best *models.Activity
	for i := range candidates {
		a := &candidates[i]
		if !fits(a, startAt, endAt) {
			continue
		}
		if best == nil || a.HoursSpent > best.HoursSpent {
			best = a
		}
	}
	return best, nil
}

// fits reports whether any of the activity's opening intervals contains a
// visit of the activity's duration starting at startAt and ending no later
// than endAt. The visit end is plain same-day time addition; a window that
// crosses midnight never matches.
func fits(a *models.Activity, startAt, endAt models.TimeOfDay) bool {
	visitEnd := startAt.AddHours(a.HoursSpent)
	if visitEnd > endAt {
		return false
	}
	for _, oh := range a.OpeningHours {
		if oh.OpenAt <= startAt && visitEnd <= oh.CloseAt {
			return true
		}
	}
	return false
}
