package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.List)
		contacts.GET("/:id", h.Detail)
		contacts.PUT("/:id", h.Update)
		contacts.DELETE("/:id", h.Delete)
	}
}
