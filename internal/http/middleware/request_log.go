package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/platform/ctxutil"
	"github.com/yungbote/casebook/internal/platform/logger"
)

// RequestLogger logs one line per request once the handler chain is done.
// Level follows the status class: 5xx error, 4xx warn, everything else info.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()

		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			fields = append(fields, "location", loc)
		}
		fields = append(fields, ctxutil.LogFields(c.Request.Context())...)
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		logAt(log, status)("HTTP request", fields...)
	}
}

func logAt(log *logger.Logger, status int) func(string, ...interface{}) {
	switch {
	case status >= 500:
		return log.Error
	case status >= 400:
		return log.Warn
	default:
		return log.Info
	}
}
