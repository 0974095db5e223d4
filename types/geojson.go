package types

import "sights-api/models"

// GeoJSON point-feature rendering for activities. Coordinates follow the
// GeoJSON convention: [longitude, latitude].

type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	Name       string  `json:"name"`
	HoursSpent float64 `json:"hours_spent"`
	Category   string  `json:"category"`
	Location   string  `json:"location"`
	District   string  `json:"district"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeature renders a single activity as a GeoJSON point feature.
func NewFeature(a models.Activity) Feature {
	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{a.Longitude, a.Latitude},
		},
		Properties: FeatureProperties{
			Name:       a.Name,
			HoursSpent: a.HoursSpent,
			Category:   a.Category,
			Location:   a.Location,
			District:   a.District,
		},
	}
}

// NewFeatureCollection renders a set of activities as a FeatureCollection.
// An empty input yields an empty (never null) features array.
func NewFeatureCollection(activities []models.Activity) FeatureCollection {
	features := make([]Feature, 0, len(activities))
	for _, a := range activities {
		features = append(features, NewFeature(a))
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
