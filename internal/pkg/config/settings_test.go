//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
				DSN:  "/app/data/scribe.db",
			},
			expectedError: false,
		},
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "scribe",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "/app/data/scribe.db",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMTPSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SMTPSettings
		expectedError bool
	}{
		{
			name:          "empty settings are valid (mail disabled)",
			settings:      &SMTPSettings{},
			expectedError: false,
		},
		{
			name: "valid settings",
			settings: &SMTPSettings{
				Host: "smtp.example.com",
				Port: 587,
				From: "noreply@example.com",
			},
			expectedError: false,
		},
		{
			name: "host without port",
			settings: &SMTPSettings{
				Host: "smtp.example.com",
			},
			expectedError: true,
		},
		{
			name: "malformed from address",
			settings: &SMTPSettings{
				Host: "smtp.example.com",
				Port: 587,
				From: "not-an-email",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeServerConfig_Defaults(t *testing.T) {
	path := writeTestConfig(t, `
database:
  type: "sqlite"
  dsn: ":memory:"
logger:
  log_level: "info"
  log_type: "console"
`)

	cfg, err := InitializeServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, 30, cfg.Auth.SessionExpireDays)
	assert.Equal(t, 15, cfg.Auth.CodeExpireMinutes)
	assert.Equal(t, 1, cfg.Auth.PruneIntervalHours)
}

func TestInitializeServerConfig_ExplicitValues(t *testing.T) {
	path := writeTestConfig(t, `
port: "9000"
database:
  type: "sqlite"
  dsn: "/tmp/test.db"
logger:
  log_level: "debug"
  log_type: "console"
auth:
  session_expire_days: 7
  code_expire_minutes: 5
  prune_interval_hours: 2
`)

	cfg, err := InitializeServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.DSN)
	assert.Equal(t, 7, cfg.Auth.SessionExpireDays)
	assert.Equal(t, 5, cfg.Auth.CodeExpireMinutes)
}

func TestInitializeServerConfig_MissingFile(t *testing.T) {
	_, err := InitializeServerConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestInitializeServerConfig_InvalidDatabaseType(t *testing.T) {
	path := writeTestConfig(t, `
database:
  type: "mysql"
  dsn: "whatever"
logger:
  log_level: "info"
  log_type: "console"
`)

	_, err := InitializeServerConfig(path)
	assert.Error(t, err)
}
