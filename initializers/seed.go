package initializers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"sights-api/models"
	"sights-api/repository"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gopkg.in/yaml.v3"
)

// SeedConfig controls where the activity dataset is imported from.
// Values come from environment variables, optionally overridden by a YAML
// config file (SEED_CONFIG_FILE, default config/seed.yaml).
type SeedConfig struct {
	Enabled bool
	Force   bool

	// Source is "file" (default) or "minio".
	Source string
	File   string

	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	UseSSL    bool
}

// seedConfigYAML is the optional on-disk override for seed settings.
type seedConfigYAML struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
	Bucket string `yaml:"bucket"`
	Object string `yaml:"object"`
}

func loadSeedConfig() SeedConfig {
	cfg := SeedConfig{
		Enabled:   !strings.EqualFold(os.Getenv("SEED_ENABLED"), "false"),
		Force:     strings.EqualFold(os.Getenv("SEED_FORCE"), "true"),
		Source:    strings.ToLower(getEnv("SEED_SOURCE", "file")),
		File:      getEnv("SEED_FILE", "data/madrid.json"),
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		Object:    os.Getenv("SEED_OBJECT"),
		UseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
	}

	path := getEnv("SEED_CONFIG_FILE", "config/seed.yaml")
	if data, err := os.ReadFile(path); err == nil {
		var override seedConfigYAML
		if err := yaml.Unmarshal(data, &override); err == nil {
			if override.Source != "" {
				cfg.Source = strings.ToLower(override.Source)
			}
			if override.File != "" {
				cfg.File = override.File
			}
			if override.Bucket != "" {
				cfg.Bucket = override.Bucket
			}
			if override.Object != "" {
				cfg.Object = override.Object
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// InitSeed imports the activity dataset on boot. The import is skipped when
// SEED_ENABLED=false or when data is already present (unless SEED_FORCE=true);
// otherwise the whole dataset is replaced in one transaction.
func InitSeed(repo *repository.ActivitiesRepository) error {
	cfg := loadSeedConfig()
	if !cfg.Enabled {
		log.Println("Seeding disabled, skipping")
		return nil
	}
	if !cfg.Force {
		n, err := repo.CountActivities()
		if err != nil {
			return err
		}
		if n > 0 {
			log.Printf("Seed skipped: %d activities already present", n)
			return nil
		}
	}

	payload, err := fetchSeedPayload(cfg)
	if err != nil {
		return err
	}
	if kind := mimetype.Detect(payload); !kind.Is("application/json") {
		return fmt.Errorf("seed payload is %s, expected application/json", kind)
	}

	var entries []seedEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return fmt.Errorf("seed payload: %w", err)
	}
	activities, err := seedActivities(entries)
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(activities); err != nil {
		return err
	}
	log.Printf("Seeded %d activities", len(activities))
	return nil
}

// fetchSeedPayload reads the raw dataset from local disk or a MinIO bucket.
func fetchSeedPayload(cfg SeedConfig) ([]byte, error) {
	switch cfg.Source {
	case "file":
		return os.ReadFile(cfg.File)
	case "minio":
		client, err := minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		obj, err := client.GetObject(context.Background(), cfg.Bucket, cfg.Object, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}
		defer obj.Close()
		return io.ReadAll(obj)
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}

// seedEntry mirrors one record of the source dataset. latlng is [lat, lon];
// opening_hours maps weekday codes to interval lists where only the first
// "HH:MM-HH:MM" entry is meaningful and an empty list means closed that day.
type seedEntry struct {
	Name         string              `json:"name"`
	HoursSpent   float64             `json:"hours_spent"`
	Category     string              `json:"category"`
	Location     string              `json:"location"`
	District     string              `json:"district"`
	LatLng       []float64           `json:"latlng"`
	OpeningHours map[string][]string `json:"opening_hours"`
}

// seedActivities converts raw entries into model records, enforcing the
// required-attribute invariant and validating weekday and time formats.
func seedActivities(entries []seedEntry) ([]models.Activity, error) {
	activities := make([]models.Activity, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" || e.Category == "" || e.Location == "" || e.District == "" {
			return nil, fmt.Errorf("seed entry %d: missing required attribute", i)
		}
		if e.HoursSpent < 0 {
			return nil, fmt.Errorf("seed entry %d (%s): negative hours_spent", i, e.Name)
		}
		if len(e.LatLng) != 2 {
			return nil, fmt.Errorf("seed entry %d (%s): latlng must be [lat, lon]", i, e.Name)
		}

		a := models.Activity{
			Name:       e.Name,
			HoursSpent: e.HoursSpent,
			Category:   e.Category,
			Location:   e.Location,
			District:   e.District,
			Latitude:   e.LatLng[0],
			Longitude:  e.LatLng[1],
		}
		for rawDay, intervals := range e.OpeningHours {
			if len(intervals) == 0 || intervals[0] == "" {
				continue
			}
			weekday, err := models.ParseWeekday(rawDay)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d (%s): %w", i, e.Name, err)
			}
			openRaw, closeRaw, ok := strings.Cut(intervals[0], "-")
			if !ok {
				return nil, fmt.Errorf("seed entry %d (%s): malformed interval %q", i, e.Name, intervals[0])
			}
			openAt, err := models.ParseTimeOfDay(openRaw)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d (%s): %w", i, e.Name, err)
			}
			closeAt, err := models.ParseTimeOfDay(closeRaw)
			if err != nil {
				return nil, fmt.Errorf("seed entry %d (%s): %w", i, e.Name, err)
			}
			a.OpeningHours = append(a.OpeningHours, models.OpeningHour{
				Weekday: weekday,
				OpenAt:  openAt,
				CloseAt: closeAt,
			})
		}
		activities = append(activities, a)
	}
	return activities, nil
}
