package http

import (
	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/middleware"
	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the stateless chat endpoints. Callers own the report
// and history; nothing is stored server side.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
	Chat(c *gin.Context)
	Greeting(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      chat.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc chat.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
