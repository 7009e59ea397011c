package http

import (
	"webaudit-srv/internal/export"
	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Audit a website
// @Description Runs the live-search then offline pipeline and returns a validated report.
// @Tags Audit
// @Accept json
// @Produce json
// @Param body body auditReq true "Target URL"
// @Success 200 {object} auditResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/audits [post]
func (h *handler) Audit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuditRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.Audit: processAuditRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Audit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.Audit: usecase Audit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAuditResp(o))
}

// @Summary Generate a search ad campaign
// @Tags Audit
// @Accept json
// @Produce json
// @Param body body adsReq true "URL and keywords"
// @Success 200 {object} model.AdCampaign
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/ads [post]
func (h *handler) GenerateAds(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.GenerateAds: processAdsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GenerateAds(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.GenerateAds: usecase GenerateAds failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Export a report
// @Description Renders a posted report as json, pdf or keywords text.
// @Tags Audit
// @Accept json
// @Produce application/json,application/pdf,text/plain
// @Param format path string true "json | pdf | keywords"
// @Param body body model.Report true "Report"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Router /api/v1/exports/{format} [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	f, err := export.Render(req.Format, req.Report)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.Export: Render failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.File(c, f.Name, f.ContentType, f.Data)
}
