package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"webaudit-srv/config"
	"webaudit-srv/internal/middleware"
	sessionHTTP "webaudit-srv/internal/session/delivery/http"
	"webaudit-srv/internal/session/repository"
	sessionMemory "webaudit-srv/internal/session/repository/memory"
	sessionRedis "webaudit-srv/internal/session/repository/redis"
	sessionUsecase "webaudit-srv/internal/session/usecase"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	sessionCfg := srv.config.Session

	var repo repository.Repository
	switch sessionCfg.Backend {
	case config.SessionBackendRedis:
		repo = sessionRedis.New(srv.redisClient, sessionRedis.Options{
			TTL:       sessionCfg.TTL,
			KeyPrefix: sessionCfg.KeyPrefix,
		})
	default:
		mem := sessionMemory.New(srv.l, sessionMemory.Options{
			TTL:       sessionCfg.TTL,
			SweepSpec: sessionCfg.SweepSpec,
		})
		if err := mem.Start(); err != nil {
			return err
		}
		srv.memorySession = mem
		repo = mem
	}

	deps := sessionUsecase.Deps{
		Repo:     repo,
		Audit:    srv.auditUC,
		Chat:     srv.chatUC,
		Storage:  srv.minioClient,
		Producer: srv.kafkaProducer,
	}

	srv.sessionUC = sessionUsecase.New(srv.l, deps, sessionUsecase.Config{
		ScanTimeout:   srv.config.Audit.Timeout,
		ArchiveExpiry: sessionCfg.ArchiveExpiry,
		ArchivePrefix: sessionCfg.ArchivePrefix,
	})

	handler := sessionHTTP.New(srv.l, srv.sessionUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered (backend=%s, archive=%t, events=%t)",
		sessionCfg.Backend, deps.Storage != nil, deps.Producer != nil)
	return nil
}

// shutdownSessions waits for running scans and stops the memory sweeper.
func (srv *HTTPServer) shutdownSessions(ctx context.Context) error {
	var err error
	if srv.sessionUC != nil {
		err = srv.sessionUC.Shutdown(ctx)
	}
	if srv.memorySession != nil {
		srv.memorySession.Stop()
	}
	return err
}
