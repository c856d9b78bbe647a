package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localreach/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "sb-access-token", cfg.Auth.CookieName)
	assert.Equal(t, 15*time.Minute, cfg.S3.PresignTTL)
	assert.Equal(t, 10*time.Minute, cfg.SES.SendTimeout)
	assert.Equal(t, "bedrock", cfg.AI.ProviderName())
	assert.Equal(t, 12, cfg.Video.PollAttempts)
	assert.False(t, cfg.AWS.HasStaticCredentials())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_CORS_ORIGINS", "https://admin.example.com,https://example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/app?sslmode=disable")
	t.Setenv("REDIS_ROLE_TTL", "30s")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "shh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Len(t, cfg.HTTP.CORSOrigins, 2)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, 30*time.Second, cfg.Redis.RoleTTL)
	assert.Equal(t, "gemini", cfg.AI.ProviderName())
	assert.True(t, cfg.AWS.HasStaticCredentials())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDatabaseSkipsSecrets(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/app")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := configs.Logger{Level: "warn", Format: "json"}

	logger := slog.New(cfg.Handler(&buf))
	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
