package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All chat
// routes require a resolved session and are rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Session(), mw.RateLimit())
	{
		chat.POST("/message", h.Message)
		chat.POST("/reset", h.Reset)
		chat.GET("/context", h.Context)
		chat.GET("/export", h.Export)
	}
}
