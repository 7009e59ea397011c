package model

import "time"

// AppState is the state of one audit view.
type AppState string

const (
	StateIdle     AppState = "IDLE"
	StateScanning AppState = "SCANNING"
	StateComplete AppState = "COMPLETE"
	StateError    AppState = "ERROR"
)

// Session is the server held context of one audit view.
// It owns the current Report, the chat history and the generated ad campaign.
type Session struct {
	ID           string        `json:"id"`
	State        AppState      `json:"state"`
	TargetURL    string        `json:"targetUrl,omitempty"`
	ScanID       string        `json:"scanId,omitempty"`
	Report       *Report       `json:"report,omitempty"`
	ErrorKind    string        `json:"errorKind,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
	History      []ChatMessage `json:"history"`
	ChatPending  bool          `json:"chatPending"`
	AdCampaign   *AdCampaign   `json:"adCampaign,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
