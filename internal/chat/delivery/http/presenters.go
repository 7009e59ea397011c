package http

import (
	"time"

	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/model"
)

type chatReq struct {
	Message string           `json:"message" binding:"required"`
	Report  *model.Report    `json:"report" binding:"required"`
	History []chatMessageReq `json:"history" binding:"dive"`
}

type greetingReq struct {
	Report *model.Report `json:"report" binding:"required"`
}

type chatMessageReq struct {
	Role      string    `json:"role" binding:"required,oneof=user model"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (r chatReq) toInput() chat.ReplyInput {
	history := make([]model.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, model.ChatMessage{
			Role:      model.ChatRole(m.Role),
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}
	return chat.ReplyInput{
		Message: r.Message,
		Report:  r.Report,
		History: history,
	}
}

type chatMessageResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type chatResp struct {
	Message  chatMessageResp `json:"message"`
	Degraded bool            `json:"degraded"`
}

func newChatMessageResp(m model.ChatMessage) chatMessageResp {
	return chatMessageResp{
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func (h *handler) newChatResp(o chat.ReplyOutput) chatResp {
	return chatResp{
		Message:  newChatMessageResp(o.Message),
		Degraded: o.Degraded,
	}
}
