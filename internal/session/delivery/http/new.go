package http

import (
	"webaudit-srv/internal/middleware"
	"webaudit-srv/internal/session"
	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho session HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      session.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc session.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
