package http

import (
	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Ask a follow-up question about a report
// @Description Stateless chat: the caller sends the report and prior history.
// @Description Model failures are answered with a fixed apology and degraded=true.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat request"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Reply(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: usecase Reply failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChatResp(o))
}

// @Summary Opening chat message for a report
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body greetingReq true "Report"
// @Success 200 {object} chatMessageResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat/greeting [post]
func (h *handler) Greeting(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGreetingRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Greeting: processGreetingRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newChatMessageResp(h.uc.Greeting(*req.Report)))
}
