package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "despensa", cfg.MongoDB.DBName)
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.Lookup.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "0 8 * * *", cfg.Expiry.CronSchedule)
	assert.Equal(t, 3, cfg.Expiry.WarnDays)
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOOKUP_TIMEOUT_SECONDS", "10")
	t.Setenv("EXPIRY_WARN_DAYS", "7")

	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 7, cfg.Expiry.WarnDays)
}

func TestLoadRejectsBadIntegers(t *testing.T) {
	t.Setenv("LOOKUP_TIMEOUT_SECONDS", "soon")

	_, err := Load("testdata/nonexistent.env")
	require.Error(t, err)
	assert.ErrorContains(t, err, "LOOKUP_TIMEOUT_SECONDS")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			MongoDB: MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "despensa"},
			Lookup:  LookupConfig{BaseURL: "https://world.openfoodfacts.org", Timeout: 5 * time.Second},
			Expiry:  ExpiryConfig{CronSchedule: "0 8 * * *", WarnDays: 3},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects missing mongo uri", func(t *testing.T) {
		cfg := valid()
		cfg.MongoDB.URI = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive lookup timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Lookup.Timeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects half-configured sheets export", func(t *testing.T) {
		cfg := valid()
		cfg.Sheets.SpreadsheetID = "sheet-id"
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts fully configured sheets export", func(t *testing.T) {
		cfg := valid()
		cfg.Sheets.CredentialsPath = "/etc/despensa/credentials.json"
		cfg.Sheets.SpreadsheetID = "sheet-id"
		require.NoError(t, cfg.Validate())
		assert.True(t, cfg.Sheets.Enabled())
	})
}
