package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	auditHTTP "webaudit-srv/internal/audit/delivery/http"
	auditUsecase "webaudit-srv/internal/audit/usecase"
	"webaudit-srv/internal/middleware"
	"webaudit-srv/pkg/extract"
	"webaudit-srv/pkg/webpage"
)

// setupCoreDomains builds the audit usecase shared by the stateless and session APIs.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	auditCfg := srv.config.Audit

	var fetcher webpage.IFetcher
	if auditCfg.PageSnapshot {
		fetcher = webpage.NewFetcher(webpage.Config{Timeout: auditCfg.FetchTimeout})
	}

	srv.auditUC = auditUsecase.New(srv.l, srv.geminiClient, extract.ByName(auditCfg.Extractor), fetcher, auditUsecase.Config{
		Temperature:      auditCfg.Temperature,
		AdsTemperature:   auditCfg.AdsTemperature,
		PageSnapshot:     auditCfg.PageSnapshot,
		SnapshotMaxChars: auditCfg.SnapshotMaxChars,
	})

	srv.l.Infof(ctx, "Audit usecase initialized, extractor=%s page_snapshot=%t", auditCfg.Extractor, auditCfg.PageSnapshot)
	return nil
}

func (srv *HTTPServer) setupAuditDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := auditHTTP.New(srv.l, srv.auditUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Audit domain registered")
	return nil
}
