package app

import (
	"strings"

	"github.com/yungbote/casebook/internal/http/middleware"
	"github.com/yungbote/casebook/internal/observability"
	"github.com/yungbote/casebook/internal/platform/envutil"
	"github.com/yungbote/casebook/internal/platform/logger"
)

const (
	defaultSecretKey   = "dev-secret"
	defaultDatabaseURL = "sqlite:///casebook.db"
	defaultPort        = "8080"
)

type Config struct {
	Env                string
	Port               string
	SecretKey          string
	DatabaseURL        string
	TemplatesDir       string
	RedisAddr          string
	AllowedOrigins     []string
	AttachmentRequired bool
	SeedFile           string
	Tracing            observability.TracingConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Env:                envutil.String("APP_ENV", "development", log),
		Port:               envutil.String("PORT", defaultPort, log),
		SecretKey:          envutil.String("SECRET_KEY", defaultSecretKey, nil),
		DatabaseURL:        envutil.String("DATABASE_URL", defaultDatabaseURL, log),
		TemplatesDir:       envutil.String("TEMPLATES_DIR", "", log),
		RedisAddr:          envutil.String("REDIS_ADDR", "", log),
		AllowedOrigins:     envutil.List("CORS_ALLOWED_ORIGINS", middleware.DefaultAllowedOrigins, log),
		AttachmentRequired: envutil.Bool("ATTACHMENT_REQUIRED", false, log),
		SeedFile:           envutil.String("SEED_FILE", "", log),
		Tracing:            observability.LoadTracingConfig(log),
	}
	cfg.Tracing.Environment = cfg.Env
	if cfg.SecretKey == defaultSecretKey && log != nil {
		log.Warn("SECRET_KEY not set, notice cookies are signed with the development key")
	}
	return cfg
}

func (c Config) Production() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func (c Config) Addr() string {
	return ":" + c.Port
}
