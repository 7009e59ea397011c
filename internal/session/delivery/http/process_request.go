package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitRequest(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processChatRequest(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processExportRequest(c *gin.Context) exportReq {
	return exportReq{ID: c.Param("id"), Format: c.Param("format")}
}
