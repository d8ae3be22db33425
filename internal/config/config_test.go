package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[server]
http_port = 9090

[logs]
level = "debug"

[business_hours]
opening_time = "08:00"
closing_time = "18:00"
slot_granularity_minutes = 30
timezone = "UTC"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)

	hours, err := cfg.Hours()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), hours.OpeningTime)
	assert.Equal(t, types.TimeString("18:00"), hours.ClosingTime)
	assert.Equal(t, 30*time.Minute, hours.SlotGranularity)
	assert.Equal(t, time.UTC, hours.Location)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[server]
http_port = 9090
`)
	writeFile(t, dir, ".env", "PANEL_DB_NAME=panel\nPANEL_DB_HOST=db.internal\n")

	t.Setenv("PANEL_HTTP_PORT", "7070")
	t.Setenv("PANEL_STORAGE_DRIVER", "postgres")
	t.Setenv("PANEL_DB_PASSWORD", "s3cret")

	// godotenv пишет в окружение процесса
	t.Cleanup(func() {
		os.Unsetenv("PANEL_DB_NAME")
		os.Unsetenv("PANEL_DB_HOST")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "panel", cfg.Database.DBName)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "postgres://:s3cret@db.internal:5432/panel?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero granularity": `
[business_hours]
slot_granularity_minutes = 0
`,
		"inverted window": `
[business_hours]
opening_time = "22:00"
closing_time = "09:00"
`,
		"bad opening time": `
[business_hours]
opening_time = "9am"
`,
		"unknown storage": `
[storage]
driver = "redis"
`,
		"bad timezone": `
[business_hours]
timezone = "Mars/Olympus"
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", content)

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_BadEnvInteger(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "")
	t.Setenv("PANEL_HTTP_PORT", "eighty")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
