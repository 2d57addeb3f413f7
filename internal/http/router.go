package http

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/casebook/internal/http/handlers"
	httpMW "github.com/yungbote/casebook/internal/http/middleware"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler *httpH.HealthHandler
	HomeHandler   *httpH.HomeHandler
	CaseHandler   *httpH.CaseHandler

	// Templates, when set, back the HTML views.
	Templates      *template.Template
	AllowedOrigins []string
	ServiceName    string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	if cfg.Templates != nil {
		r.SetHTMLTemplate(cfg.Templates)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Home
	if cfg.HomeHandler != nil {
		r.GET("/", cfg.HomeHandler.Index)
	}

	// Cases
	if cfg.CaseHandler != nil {
		cases := r.Group("/cases")
		{
			cases.GET("", cfg.CaseHandler.ListCases)
			cases.GET("/add", cfg.CaseHandler.AddCaseForm)
			cases.POST("/add", cfg.CaseHandler.SubmitCase)
			cases.GET("/random", cfg.CaseHandler.RandomCase)
			cases.GET("/:id", cfg.CaseHandler.ViewCase)
			cases.GET("/:id/download", cfg.CaseHandler.DownloadCase)
		}
	}

	return r
}
