package session

import (
	"time"

	"webaudit-srv/internal/model"
)

// Event types published after each scan.
const (
	EventAuditCompleted = "audit.completed"
	EventAuditFailed    = "audit.failed"
)

type SubmitInput struct {
	SessionID string
	URL       string
}

type ChatInput struct {
	SessionID string
	Message   string
}

type ChatOutput struct {
	Reply    model.ChatMessage
	Degraded bool
	// Dropped is set when the session was reset while the reply was generated.
	Dropped bool
	History []model.ChatMessage
}

type ExportInput struct {
	SessionID string
	Format    string
}

type ArchiveOutput struct {
	URL        string
	ExpiresAt  time.Time
	ObjectName string
	FileName   string
}

// ScanEvent is the message published for every applied scan outcome.
type ScanEvent struct {
	Type         string    `json:"type"`
	SessionID    string    `json:"sessionId"`
	ScanID       string    `json:"scanId"`
	URL          string    `json:"url"`
	Strategy     string    `json:"strategy,omitempty"`
	Attempts     int       `json:"attempts,omitempty"`
	OverallScore int       `json:"overallScore,omitempty"`
	ErrorKind    string    `json:"errorKind,omitempty"`
	DurationMs   int64     `json:"durationMs"`
	OccurredAt   time.Time `json:"occurredAt"`
}
