package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"walt/internal/adapters/out/distance"
	"walt/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	Storage     string
	MaxDistance float64
	ReportCron  string
	Calendar    *time.Location
}

// LoadConfig reads the environment after loading envFile into it.
// A missing file is not an error and variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:    envOr("HTTP_PORT", "8080"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      envOr("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   envOr("DB_SSLMODE", "disable"),
		Storage:     envOr("STORAGE", StoragePostgres),
		MaxDistance: distance.DefaultMaxDistance,
		ReportCron:  envOr("REPORT_CRON", jobs.DefaultReportSchedule),
	}

	if raw := os.Getenv("MAX_DISTANCE"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_DISTANCE %q: %w", raw, err)
		}
		if !(maxDistance > 0) || maxDistance > distance.DefaultMaxDistance {
			return Config{}, fmt.Errorf("invalid MAX_DISTANCE %q, expected a value in (0, %g]", raw, distance.DefaultMaxDistance)
		}
		config.MaxDistance = maxDistance
	}

	zone := envOr("DELIVERY_TIMEZONE", "Local")
	calendar, err := time.LoadLocation(zone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DELIVERY_TIMEZONE %q: %w", zone, err)
	}
	config.Calendar = calendar

	switch config.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q, expected %s or %s", config.Storage, StoragePostgres, StorageMemory)
	}

	return config, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
