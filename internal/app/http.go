package app

import (
	"fmt"
	"html/template"
	"path/filepath"

	apphttp "github.com/yungbote/casebook/internal/http"
	httpH "github.com/yungbote/casebook/internal/http/handlers"
	"github.com/yungbote/casebook/internal/http/notice"
	"github.com/yungbote/casebook/internal/http/response"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Home   *httpH.HomeHandler
	Case   *httpH.CaseHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, notices notice.Store, renderer *response.Renderer) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Home:   httpH.NewHomeHandler(log, notices, renderer),
		Case: httpH.NewCaseHandler(httpH.CaseHandlerDeps{
			Log:                log,
			CaseService:        services.Case,
			Notices:            notices,
			Renderer:           renderer,
			AttachmentRequired: cfg.AttachmentRequired,
		}),
	}
}

// wireNotices picks the redis store when REDIS_ADDR is set, the signed
// cookie store otherwise. The returned close func is never nil.
func wireNotices(log *logger.Logger, cfg Config) (notice.Store, func() error, error) {
	if cfg.RedisAddr == "" {
		return notice.NewCookieStore(cfg.SecretKey, cfg.Production()), func() error { return nil }, nil
	}
	store, err := notice.NewRedisStore(log, cfg.RedisAddr, cfg.Production())
	if err != nil {
		return nil, nil, fmt.Errorf("init redis notices: %w", err)
	}
	return store, store.Close, nil
}

// loadTemplates parses every *.html in dir. An empty dir means JSON views.
func loadTemplates(dir string) (*template.Template, error) {
	if dir == "" {
		return nil, nil
	}
	pattern := filepath.Join(dir, "*.html")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("templates glob: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no templates match %s", pattern)
	}
	return template.ParseFiles(matches...)
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, tmpl *template.Template) *apphttp.Server {
	serviceName := ""
	if cfg.Tracing.Enabled {
		serviceName = cfg.Tracing.ServiceName
	}
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		HealthHandler:  handlers.Health,
		HomeHandler:    handlers.Home,
		CaseHandler:    handlers.Case,
		Templates:      tmpl,
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    serviceName,
	})
}
