package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"sights-api/models"
)

// ActivityFilter narrows GetActivities. Nil fields are ignored; Latitude and
// Longitude only take effect together.
type ActivityFilter struct {
	Category  *string
	Latitude  *float64
	Longitude *float64
}

type ActivitiesRepository struct {
	db *sql.DB
}

func NewActivitiesRepository(db *sql.DB) *ActivitiesRepository {
	return &ActivitiesRepository{db: db}
}

// GetActivities returns activities matching the filter, without opening hours.
func (r *ActivitiesRepository) GetActivities(filter ActivityFilter) ([]models.Activity, error) {
	query := `
		SELECT id, name, hours_spent, category, location, district, latitude, longitude, created_at, modified_at
		FROM activities`
	var conditions []string
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Latitude != nil && filter.Longitude != nil {
		args = append(args, *filter.Latitude)
		conditions = append(conditions, "latitude = $"+strconv.Itoa(len(args)))
		args = append(args, *filter.Longitude)
		conditions = append(conditions, "longitude = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.HoursSpent,
			&a.Category,
			&a.Location,
			&a.District,
			&a.Latitude,
			&a.Longitude,
			&a.CreatedAt,
			&a.ModifiedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetCandidates returns activities in the category that have at least one
// opening interval on the weekday, each carrying only that weekday's
// intervals. Rows come back ordered by activity id, which fixes the
// tie-break order used by the recommendation engine.
//
// Times cross the wire as HH24:MI strings and are parsed here; the fit
// evaluation itself never happens in SQL.
func (r *ActivitiesRepository) GetCandidates(category string, weekday models.Weekday) ([]models.Activity, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.name, a.hours_spent, a.category, a.location, a.district,
		       a.latitude, a.longitude, a.created_at, a.modified_at,
		       oh.id, oh.weekday, to_char(oh.open_at, 'HH24:MI'), to_char(oh.close_at, 'HH24:MI')
		FROM activities a
		INNER JOIN opening_hours oh ON oh.activity_id = a.id
		WHERE a.category = $1 AND oh.weekday = $2
		ORDER BY a.id, oh.id
	`, category, string(weekday))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var oh models.OpeningHour
		var rawWeekday, rawOpen, rawClose string
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.HoursSpent,
			&a.Category,
			&a.Location,
			&a.District,
			&a.Latitude,
			&a.Longitude,
			&a.CreatedAt,
			&a.ModifiedAt,
			&oh.ID,
			&rawWeekday,
			&rawOpen,
			&rawClose,
		); err != nil {
			return nil, err
		}
		oh.Weekday = models.Weekday(rawWeekday)
		if oh.OpenAt, err = models.ParseTimeOfDay(rawOpen); err != nil {
			return nil, fmt.Errorf("opening hour %d: %w", oh.ID, err)
		}
		if oh.CloseAt, err = models.ParseTimeOfDay(rawClose); err != nil {
			return nil, fmt.Errorf("opening hour %d: %w", oh.ID, err)
		}

		if n := len(activities); n > 0 && activities[n-1].ID == a.ID {
			activities[n-1].OpeningHours = append(activities[n-1].OpeningHours, oh)
		} else {
			a.OpeningHours = []models.OpeningHour{oh}
			activities = append(activities, a)
		}
	}
	return activities, rows.Err()
}

// ReplaceAll atomically replaces the whole dataset with the given activities
// and their owned opening hours. Used by the seed importer; opening_hours
// rows go away with their activity via ON DELETE CASCADE.
func (r *ActivitiesRepository) ReplaceAll(activities []models.Activity) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return err
	}

	for _, a := range activities {
		var activityID int
		err := tx.QueryRow(`
			INSERT INTO activities (name, hours_spent, category, location, district, latitude, longitude, created_at, modified_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING id
		`, a.Name, a.HoursSpent, a.Category, a.Location, a.District, a.Latitude, a.Longitude).Scan(&activityID)
		if err != nil {
			return err
		}
		for _, oh := range a.OpeningHours {
			_, err := tx.Exec(`
				INSERT INTO opening_hours (activity_id, weekday, open_at, close_at, created_at, modified_at)
				VALUES ($1, $2, $3::time, $4::time, NOW(), NOW())
			`, activityID, string(oh.Weekday), oh.OpenAt.String(), oh.CloseAt.String())
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// CountActivities reports the dataset size, used to decide whether seeding
// is needed on boot.
func (r *ActivitiesRepository) CountActivities() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n)
	return n, err
}
