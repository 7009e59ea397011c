package httpserver

import (
	"context"
	"fmt"

	"webaudit-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	cors := middleware.DefaultCORSConfig(srv.environment)
	if len(srv.config.CORS.AllowedOrigins) > 0 {
		cors.AllowedOrigins = srv.config.CORS.AllowedOrigins
	}
	mw := middleware.New(srv.l, srv.discord, cors)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("core domains: %w", err)
	}

	r := srv.gin.Group("")
	if err := srv.setupAuditDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("audit domain: %w", err)
	}
	if err := srv.setupChatDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("chat domain: %w", err)
	}
	if err := srv.setupSessionDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("session domain: %w", err)
	}

	srv.registerStatic(ctx)
	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (%d allowed origins)", len(srv.config.CORS.AllowedOrigins))
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
