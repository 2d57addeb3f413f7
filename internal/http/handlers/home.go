package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/http/notice"
	"github.com/yungbote/casebook/internal/http/response"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type HomeHandler struct {
	log      *logger.Logger
	notices  notice.Store
	renderer *response.Renderer
}

func NewHomeHandler(log *logger.Logger, notices notice.Store, renderer *response.Renderer) *HomeHandler {
	return &HomeHandler{
		log:      log.With("handler", "HomeHandler"),
		notices:  notices,
		renderer: renderer,
	}
}

// GET /
func (h *HomeHandler) Index(c *gin.Context) {
	h.renderer.View(c, http.StatusOK, "index", gin.H{
		"notices": popNotices(c, h.notices, h.log),
	})
}
