package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/http/notice"
	"github.com/yungbote/casebook/internal/platform/ctxutil"
	"github.com/yungbote/casebook/internal/platform/logger"
)

// withRequest appends the request's trace ids to a log line.
func withRequest(c *gin.Context, kv ...interface{}) []interface{} {
	return append(kv, ctxutil.LogFields(c.Request.Context())...)
}

// popNotices never fails the request: a broken notice store only costs the
// user a message.
func popNotices(c *gin.Context, store notice.Store, log *logger.Logger) []notice.Notice {
	if store == nil {
		return nil
	}
	ns, err := store.Pop(c)
	if err != nil {
		log.Warn("Pop notices failed", "error", err)
		return nil
	}
	return ns
}

func addNotice(c *gin.Context, store notice.Store, log *logger.Logger, category notice.Category, msg string) {
	if store == nil {
		return
	}
	if err := store.Add(c, notice.Notice{Category: category, Message: msg}); err != nil {
		log.Warn("Add notice failed", "error", err, "category", category)
	}
}
