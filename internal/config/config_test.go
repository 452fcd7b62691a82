package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "https://api.telegram.org", cfg.Notify.APIURL)
	assert.Equal(t, "uz-UZ", cfg.Notify.Locale)
	assert.False(t, cfg.Admin.RequireToken)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Server.MetricsEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "7")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_REQUIRE_TOKEN", "true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "123:abc", cfg.Notify.BotToken)
	assert.True(t, cfg.Admin.RequireToken)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Server.MetricsEnabled)
}

func TestAdminValidate(t *testing.T) {
	assert.NoError(t, AdminConfig{JWTSecret: DefaultJWTSecret}.Validate())
	assert.NoError(t, AdminConfig{RequireToken: true, JWTSecret: "s3cr3t"}.Validate())
	assert.ErrorIs(t, AdminConfig{RequireToken: true, JWTSecret: DefaultJWTSecret}.Validate(), ErrDefaultJWTSecret)
	assert.ErrorIs(t, AdminConfig{RequireToken: true, JWTSecret: " "}.Validate(), ErrDefaultJWTSecret)
}

func TestLoadRequireTokenWithDefaultSecretFailsValidation(t *testing.T) {
	t.Setenv("ADMIN_REQUIRE_TOKEN", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Admin.Validate(), ErrDefaultJWTSecret)

	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg, err = Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Admin.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}
