package usecase

import (
	"context"
	"fmt"
	"strings"

	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/gemini"
)

// Reply - Follow-up chat about a report
// Flow: validate → system instruction from report → history → gateway → apology on failure
func (uc *implUseCase) Reply(ctx context.Context, input chat.ReplyInput) (chat.ReplyOutput, error) {
	if err := uc.validateReplyInput(input); err != nil {
		return chat.ReplyOutput{}, err
	}

	resp, err := uc.gemini.Chat(ctx, gemini.ChatRequest{
		SystemInstruction: buildSystemInstruction(*input.Report),
		History:           buildHistory(input.History),
		Message:           strings.TrimSpace(input.Message),
		Temperature:       uc.temperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Reply: gateway failed, sending apology: %v", err)
		return chat.ReplyOutput{Message: uc.modelMessage(chat.ApologyMessage), Degraded: true}, nil
	}

	return chat.ReplyOutput{Message: uc.modelMessage(strings.TrimSpace(resp.Text))}, nil
}

// Greeting - Seed message once a report is ready
func (uc *implUseCase) Greeting(report model.Report) model.ChatMessage {
	return uc.modelMessage(fmt.Sprintf(
		"Hello! I've analyzed %s. I found %d issues. Ask me how to fix any of them!",
		report.TargetURL, report.FindingCount()))
}

func (uc *implUseCase) validateReplyInput(input chat.ReplyInput) error {
	if err := chat.ValidateMessage(input.Message); err != nil {
		return err
	}
	if input.Report == nil {
		return chat.ErrReportRequired
	}
	return nil
}

func (uc *implUseCase) modelMessage(text string) model.ChatMessage {
	return model.ChatMessage{Role: model.ChatRoleModel, Text: text, Timestamp: uc.now().UTC()}
}
