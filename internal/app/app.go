package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yungbote/casebook/internal/data/db"
	apphttp "github.com/yungbote/casebook/internal/http"
	"github.com/yungbote/casebook/internal/http/response"
	"github.com/yungbote/casebook/internal/observability"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Cfg      Config
	Repos    Repos
	Services Services
	Handlers Handlers
	Server   *apphttp.Server

	closeNotices    func() error
	shutdownTracing func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{Log: log, Cfg: cfg}
	if err := a.init(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	log, cfg := a.Log, a.Cfg

	shutdown, err := observability.InitTracing(ctx, log, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	a.shutdownTracing = shutdown

	dbs, err := db.Open(cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.DB = dbs
	if err := dbs.AutoMigrateAll(); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	a.Repos = wireRepos(dbs.DB(), log)
	a.Services = wireServices(dbs.DB(), log, cfg, a.Repos)
	if err := seed(ctx, log, cfg, a.Services.Case); err != nil {
		return err
	}

	notices, closeNotices, err := wireNotices(log, cfg)
	if err != nil {
		return err
	}
	a.closeNotices = closeNotices

	tmpl, err := loadTemplates(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	renderer := response.NewRenderer(tmpl != nil)

	a.Handlers = wireHandlers(log, cfg, a.Services, notices, renderer)
	a.Server = wireServer(log, cfg, a.Handlers, tmpl)
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(ctx, a.Cfg.Addr())
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.closeNotices != nil {
		if err := a.closeNotices(); err != nil {
			a.Log.Warn("Close notice store failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("Close database failed", "error", err)
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(context.Background()); err != nil {
			a.Log.Warn("Tracing shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
