package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "webaudit-srv/internal/chat/delivery/http"
	chatUsecase "webaudit-srv/internal/chat/usecase"
	"webaudit-srv/internal/middleware"
)

// setupChatDomain builds the chat usecase and mounts the stateless chat API.
// The session domain reuses srv.chatUC, so this must run before it.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	srv.chatUC = chatUsecase.New(srv.geminiClient, srv.l, srv.config.Chat.Temperature)

	chatHTTP.New(srv.l, srv.chatUC, srv.discord).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Chat domain registered, temperature=%.2f", srv.config.Chat.Temperature)
	return nil
}
