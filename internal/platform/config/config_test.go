package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "novamuse", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, "quote-service", cfg.Services.Quote.Name)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)
}

func TestLoad_AuthDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://novamuse.auth.us-east-1.amazoncognito.com", cfg.Auth.Domain)
	assert.Equal(t, "email openid profile", cfg.Auth.Scopes)
	assert.Equal(t, "/callback", cfg.Auth.RedirectPath)
	assert.Equal(t, DefaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, DefaultAuthRequestTTL, cfg.Auth.AuthRequestTTL)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t,
		"https://cognito-idp.us-east-1.amazonaws.com/us-east-1_l7TW7lTEh",
		cfg.Auth.Authority(),
	)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 90*time.Second, cfg.Client.Transport.IdleConnTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Database.PurgeInterval)
}

// TestLoad_EnvVarOverrides covers keys that contain underscores themselves.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER__PORT", "9090")
	t.Setenv("APP_SERVER__READ_TIMEOUT", "3s")
	t.Setenv("APP_AUTH__CLIENT_ID", "fake-client-id-123")
	t.Setenv("APP_AUTH__COOKIE_SECURE", "false")
	t.Setenv("APP_SERVICES__QUOTE__BASE_URL", "https://quotes.example.com/api")
	t.Setenv("APP_TELEMETRY__ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "fake-client-id-123", cfg.Auth.ClientID)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "https://quotes.example.com/api", cfg.Services.Quote.BaseURL)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("APP_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "services.quote.base_url", envKey("APP_SERVICES__QUOTE__BASE_URL"))
	assert.Equal(t, "environment", envKey("APP_ENVIRONMENT"))
}

func TestLoad_ProfileFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte(`
log:
  level: debug
services:
  quote:
    name: quotes
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "prod.yaml"), []byte(`
log:
  level: warn
`), 0o600))

	t.Chdir(dir)

	cfg, err := Load("prod")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "quotes", cfg.Services.Quote.Name)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "novamuse", cfg.App.Name)
}

func TestLoad_DefaultsNeedClientID(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.client_id is required")
}
