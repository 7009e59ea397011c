package http

import (
	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create a session
// @Tags Session
// @Produce json
// @Success 200 {object} sessionResp
// @Router /api/v1/sessions [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Create(ctx)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// @Summary Get a session
// @Description Poll this endpoint while the session is SCANNING.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} sessionResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// @Summary Delete a session
// @Tags Session
// @Param id path string true "Session ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Start an audit
// @Description IDLE → SCANNING. The result lands on the session; poll GET /sessions/{id}.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body submitReq true "Target URL"
// @Success 202 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/sessions/{id}/audit [post]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Submit: processSubmitRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Submit(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Submit: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Accepted(c, h.newSessionResp(s))
}

// @Summary Reset a session
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} sessionResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sessions/{id}/reset [post]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Reset(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Reset: usecase Reset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// @Summary Ask the consultant
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body chatReq true "Question"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/sessions/{id}/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Chat(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Chat: usecase Chat failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChatResp(o))
}

// @Summary Generate an ad campaign from the session report
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.AdCampaign
// @Failure 409 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/sessions/{id}/ads [post]
func (h *handler) GenerateAds(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.GenerateAds(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.GenerateAds: usecase GenerateAds failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Download the session report
// @Tags Session
// @Produce application/json,application/pdf,text/plain
// @Param id path string true "Session ID"
// @Param format path string true "json | pdf | keywords"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/sessions/{id}/export/{format} [get]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processExportRequest(c)
	f, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.File(c, f.Name, f.ContentType, f.Data)
}

// @Summary Archive the session report
// @Description Uploads the export to object storage and returns a presigned download link.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Param format path string true "json | pdf | keywords"
// @Success 200 {object} archiveResp
// @Failure 409 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/sessions/{id}/archive/{format} [post]
func (h *handler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processExportRequest(c)
	o, err := h.uc.Archive(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Archive: usecase Archive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newArchiveResp(o))
}
