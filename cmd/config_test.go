package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"walt/cmd"
	"walt/internal/adapters/out/distance"
	"walt/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "STORAGE", "MAX_DISTANCE", "REPORT_CRON", "DELIVERY_TIMEZONE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, config.Storage)
	assert.InDelta(t, distance.DefaultMaxDistance, config.MaxDistance, 1e-9)
	assert.Equal(t, jobs.DefaultReportSchedule, config.ReportCron)
	assert.Equal(t, time.Local, config.Calendar)
}

func TestLoadConfig_DeliveryTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("DELIVERY_TIMEZONE", "UTC")

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, time.UTC, config.Calendar)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nDB_HOST=db\nMAX_DISTANCE=12.5\n"), 0o600))
	t.Setenv("DB_HOST", "override")

	config, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "override", config.DBHost)
	assert.InDelta(t, 12.5, config.MaxDistance, 1e-9)
	assert.Contains(t, config.DSN(), "host=override")
}

func TestLoadConfig_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("max distance", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_DISTANCE", "far")

		_, err := cmd.LoadConfig(missing)
		require.Error(t, err)
	})

	t.Run("max distance out of range", func(t *testing.T) {
		for _, raw := range []string{"0", "-1", "20.5", "100"} {
			clearEnv(t)
			t.Setenv("MAX_DISTANCE", raw)

			_, err := cmd.LoadConfig(missing)
			require.Error(t, err, raw)
		}
	})

	t.Run("max distance at the bound", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_DISTANCE", "20")

		config, err := cmd.LoadConfig(missing)
		require.NoError(t, err)
		assert.InDelta(t, distance.DefaultMaxDistance, config.MaxDistance, 1e-9)
	})

	t.Run("delivery timezone", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DELIVERY_TIMEZONE", "Mars/Olympus_Mons")

		_, err := cmd.LoadConfig(missing)
		require.Error(t, err)
	})

	t.Run("storage", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORAGE", "redis")

		_, err := cmd.LoadConfig(missing)
		require.Error(t, err)
	})
}
