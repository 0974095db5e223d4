package handlers

import (
	"net/http"
	"strconv"

	"sights-api/models"
	"sights-api/repository"
	"sights-api/types"

	"github.com/gin-gonic/gin"
)

// ActivitiesStore is the read surface the index endpoint needs.
type ActivitiesStore interface {
	GetActivities(filter repository.ActivityFilter) ([]models.Activity, error)
}

// Recommender picks at most one activity for a visit window.
type Recommender interface {
	Recommend(category string, weekday models.Weekday, startAt, endAt models.TimeOfDay) (*models.Activity, error)
}

type ActivitiesHandler struct {
	store  ActivitiesStore
	engine Recommender
}

func NewActivitiesHandler(store ActivitiesStore, engine Recommender) *ActivitiesHandler {
	return &ActivitiesHandler{store: store, engine: engine}
}

// GetActivities handles GET /api/v1/activities.
// Optional exact filters: category, and latitude+longitude as a pair. A lone
// or non-numeric coordinate parameter is ignored rather than rejected.
func (h *ActivitiesHandler) GetActivities(c *gin.Context) {
	var filter repository.ActivityFilter

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if latRaw, lonRaw := c.Query("latitude"), c.Query("longitude"); latRaw != "" && lonRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lon, lonErr := strconv.ParseFloat(lonRaw, 64)
		if latErr == nil && lonErr == nil {
			filter.Latitude = &lat
			filter.Longitude = &lon
		}
	}

	activities, err := h.store.GetActivities(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorsResponse("internal error"))
		return
	}
	c.JSON(http.StatusOK, types.NewFeatureCollection(activities))
}

// GetRecommended handles GET /api/v1/activities/recommended.
// category, start_at, end_at and weekday are mandatory; time parameters must
// be H:MM or HH:MM. All validation errors are collected and returned together
// as a 422. A query with no match is a 200 with an empty FeatureCollection.
func (h *ActivitiesHandler) GetRecommended(c *gin.Context) {
	var errs []string

	category := c.Query("category")
	if category == "" {
		errs = append(errs, "category is required")
	}

	startAt, timeErrs := requireTimeOfDay(c, "start_at")
	errs = append(errs, timeErrs...)
	endAt, timeErrs := requireTimeOfDay(c, "end_at")
	errs = append(errs, timeErrs...)

	var weekday models.Weekday
	if raw := c.Query("weekday"); raw == "" {
		errs = append(errs, "weekday is required")
	} else {
		var err error
		if weekday, err = models.ParseWeekday(raw); err != nil {
			errs = append(errs, "weekday has an invalid format")
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, types.NewErrorsResponse(errs...))
		return
	}

	match, err := h.engine.Recommend(category, weekday, startAt, endAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorsResponse("internal error"))
		return
	}

	var results []models.Activity
	if match != nil {
		results = append(results, *match)
	}
	c.JSON(http.StatusOK, types.NewFeatureCollection(results))
}

// requireTimeOfDay reads a mandatory H:MM / HH:MM query parameter, returning
// the parsed value and any validation messages for the field.
func requireTimeOfDay(c *gin.Context, name string) (models.TimeOfDay, []string) {
	raw := c.Query(name)
	if raw == "" {
		return 0, []string{name + " is required"}
	}
	t, err := models.ParseTimeOfDay(raw)
	if err != nil {
		return 0, []string{name + " has an invalid format"}
	}
	return t, nil
}
