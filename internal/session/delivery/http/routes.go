package http

import (
	"webaudit-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	sessions := r.Group("/api/v1/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Delete)

		sessions.POST("/:id/audit", h.Submit)
		sessions.POST("/:id/reset", h.Reset)
		sessions.POST("/:id/chat", h.Chat)
		sessions.POST("/:id/ads", h.GenerateAds)

		sessions.GET("/:id/export/:format", h.Export)
		sessions.POST("/:id/archive/:format", h.Archive)
	}
}
