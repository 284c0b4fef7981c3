package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Lookup  LookupConfig
	Expiry  ExpiryConfig
	Sheets  SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the inventory store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// LookupConfig contains options for the external product lookup API.
type LookupConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ExpiryConfig holds settings for the scheduled expiry review job.
type ExpiryConfig struct {
	CronSchedule string
	WarnDays     int
}

// SheetsConfig contains the optional Google Sheets snapshot export settings.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the sheets snapshot export is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	lookupTimeout, err := getenvSeconds("LOOKUP_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}

	warnDays, err := getenvInt("EXPIRY_WARN_DAYS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "despensa"),
		},
		Lookup: LookupConfig{
			BaseURL: getenvWithDefault("LOOKUP_BASE_URL", "https://world.openfoodfacts.org"),
			Timeout: lookupTimeout,
		},
		Expiry: ExpiryConfig{
			CronSchedule: getenvWithDefault("EXPIRY_CRON_SCHEDULE", "0 8 * * *"),
			WarnDays:     warnDays,
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_SNAPSHOT_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Lookup.BaseURL == "" {
		return errors.New("LOOKUP_BASE_URL must not be empty")
	}

	if c.Lookup.Timeout <= 0 {
		return errors.New("LOOKUP_TIMEOUT_SECONDS must be positive")
	}

	if c.Expiry.CronSchedule == "" {
		return errors.New("EXPIRY_CRON_SCHEDULE must be provided")
	}

	if c.Expiry.WarnDays < 1 {
		return errors.New("EXPIRY_WARN_DAYS must be at least 1")
	}

	// The sheets export is optional but must be configured in full.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_SNAPSHOT_ID must be set together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getenvSeconds(key string, fallback int) (time.Duration, error) {
	seconds, err := getenvInt(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
