package chat

import (
	"context"

	"webaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply answers a follow-up question about a Report. Model failures degrade to ApologyMessage.
	Reply(ctx context.Context, input ReplyInput) (ReplyOutput, error)
	// Greeting is the first model message shown once a Report is available.
	Greeting(report model.Report) model.ChatMessage
}
