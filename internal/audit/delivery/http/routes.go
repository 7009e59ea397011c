package http

import (
	"webaudit-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/audits", h.Audit)
		api.POST("/ads", h.GenerateAds)
		api.POST("/exports/:format", h.Export)
	}
}
