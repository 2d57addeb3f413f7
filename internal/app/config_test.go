package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yungbote/casebook/internal/http/middleware"
	"github.com/yungbote/casebook/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "SECRET_KEY", "DATABASE_URL", "TEMPLATES_DIR", "REDIS_ADDR",
		"CORS_ALLOWED_ORIGINS", "ATTACHMENT_REQUIRED", "SEED_FILE", "OTEL_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig(testLogger(t))

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Production())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, defaultSecretKey, cfg.SecretKey)
	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, middleware.DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.False(t, cfg.AttachmentRequired)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/cases")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ATTACHMENT_REQUIRED", "true")
	t.Setenv("SEED_FILE", "seed.yaml")

	cfg := LoadConfig(testLogger(t))

	assert.True(t, cfg.Production())
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "postgres://u:p@db:5432/cases", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.AttachmentRequired)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.Equal(t, "production", cfg.Tracing.Environment)
}
