package chat

import "webaudit-srv/internal/model"

const (
	MaxHistoryMessages = 20
	MaxMessageLength   = 2000
	TopFindings        = 5
	DefaultTemperature = 0.7

	// ApologyMessage replaces the reply when the model service fails.
	ApologyMessage = "I'm having trouble connecting to the core right now."
)

type ReplyInput struct {
	Message string
	Report  *model.Report
	History []model.ChatMessage
}

type ReplyOutput struct {
	Message  model.ChatMessage
	Degraded bool
}
