package http

import (
	"time"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
)

type submitReq struct {
	URL string `json:"url" binding:"required"`
}

func (r submitReq) toInput(id string) session.SubmitInput {
	return session.SubmitInput{SessionID: id, URL: r.URL}
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput(id string) session.ChatInput {
	return session.ChatInput{SessionID: id, Message: r.Message}
}

type exportReq struct {
	ID     string
	Format string
}

func (r exportReq) toInput() session.ExportInput {
	return session.ExportInput{SessionID: r.ID, Format: r.Format}
}

type chatMessageResp struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type sessionResp struct {
	ID          string            `json:"id"`
	State       string            `json:"state"`
	TargetURL   string            `json:"target_url,omitempty"`
	Report      *model.Report     `json:"report,omitempty"`
	Error       *errorResp        `json:"error,omitempty"`
	History     []chatMessageResp `json:"history"`
	ChatPending bool              `json:"chat_pending"`
	AdCampaign  *model.AdCampaign `json:"ad_campaign,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type chatResp struct {
	Message  chatMessageResp   `json:"message"`
	Degraded bool              `json:"degraded"`
	Dropped  bool              `json:"dropped"`
	History  []chatMessageResp `json:"history"`
}

type archiveResp struct {
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
	ObjectName string    `json:"object_name"`
	FileName   string    `json:"file_name"`
}

func newChatMessageResp(m model.ChatMessage) chatMessageResp {
	return chatMessageResp{
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func newHistoryResp(history []model.ChatMessage) []chatMessageResp {
	resp := make([]chatMessageResp, 0, len(history))
	for _, m := range history {
		resp = append(resp, newChatMessageResp(m))
	}
	return resp
}

func (h *handler) newSessionResp(s model.Session) sessionResp {
	resp := sessionResp{
		ID:          s.ID,
		State:       string(s.State),
		TargetURL:   s.TargetURL,
		Report:      s.Report,
		History:     newHistoryResp(s.History),
		ChatPending: s.ChatPending,
		AdCampaign:  s.AdCampaign,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.State == model.StateError {
		resp.Error = &errorResp{Kind: s.ErrorKind, Message: s.ErrorMessage}
	}
	return resp
}

func (h *handler) newChatResp(o session.ChatOutput) chatResp {
	return chatResp{
		Message:  newChatMessageResp(o.Reply),
		Degraded: o.Degraded,
		Dropped:  o.Dropped,
		History:  newHistoryResp(o.History),
	}
}

func (h *handler) newArchiveResp(o session.ArchiveOutput) archiveResp {
	return archiveResp{
		URL:        o.URL,
		ExpiresAt:  o.ExpiresAt,
		ObjectName: o.ObjectName,
		FileName:   o.FileName,
	}
}
