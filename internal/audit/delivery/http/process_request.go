package http

import (
	"webaudit-srv/internal/export"
	pkgErrors "webaudit-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAuditRequest(c *gin.Context) (auditReq, error) {
	var req auditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAdsRequest(c *gin.Context) (adsReq, error) {
	var req adsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processExportRequest(c *gin.Context) (exportReq, error) {
	req := exportReq{Format: c.Param("format")}
	if err := c.ShouldBindJSON(&req.Report); err != nil {
		return req, err
	}

	errs := pkgErrors.NewValidationErrorCollector()
	if !export.Supported(req.Format) {
		errs.Add("format", "must be one of json, pdf, keywords")
	}
	if req.Report.TargetURL == "" {
		errs.Add("targetUrl", "is required")
	}
	if errs.HasError() {
		return req, errs
	}
	return req, nil
}
