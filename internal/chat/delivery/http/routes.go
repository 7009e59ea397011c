package http

import (
	"webaudit-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/api/v1/chat")
	g.POST("", h.Chat)
	g.POST("/greeting", h.Greeting)
}
