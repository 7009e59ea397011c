package usecase

import (
	"context"
	"errors"
	"strings"

	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository"
)

// Chat - Follow-up question on the session report
// Flow: accept (COMPLETE, no pending reply) → append user message → reply → append reply
func (uc *implUseCase) Chat(ctx context.Context, input session.ChatInput) (session.ChatOutput, error) {
	if err := chat.ValidateMessage(input.Message); err != nil {
		return session.ChatOutput{}, err
	}
	userMsg := model.ChatMessage{
		Role:      model.ChatRoleUser,
		Text:      strings.TrimSpace(input.Message),
		Timestamp: uc.now().UTC(),
	}

	var (
		report  *model.Report
		history []model.ChatMessage
		scanID  string
	)
	_, err := uc.repo.Update(ctx, input.SessionID, func(s *model.Session) error {
		if s.State != model.StateComplete || s.Report == nil {
			return session.ErrNoReport
		}
		if s.ChatPending {
			return session.ErrReplyPending
		}
		report = s.Report
		history = append([]model.ChatMessage(nil), s.History...)
		scanID = s.ScanID

		s.History = append(s.History, userMsg)
		s.ChatPending = true
		s.UpdatedAt = uc.now().UTC()
		return nil
	})
	if err != nil {
		return session.ChatOutput{}, mapRepoError(err)
	}

	// The pending flag must be cleared even if the caller goes away.
	writeCtx := context.WithoutCancel(ctx)

	out, err := uc.chat.Reply(ctx, chat.ReplyInput{
		Message: userMsg.Text,
		Report:  report,
		History: history,
	})
	if err != nil {
		uc.finishReply(writeCtx, input.SessionID, scanID, nil)
		return session.ChatOutput{}, err
	}

	s, err := uc.finishReply(writeCtx, input.SessionID, scanID, &out.Message)
	switch {
	case errors.Is(err, errStaleResult), errors.Is(err, repository.ErrNotFound):
		uc.l.Infof(ctx, "session.usecase.Chat: session %s changed while replying, reply dropped", input.SessionID)
		return session.ChatOutput{Reply: out.Message, Degraded: out.Degraded, Dropped: true}, nil
	case err != nil:
		uc.l.Errorf(ctx, "session.usecase.Chat: finishReply failed: %v", err)
		return session.ChatOutput{}, err
	}

	return session.ChatOutput{
		Reply:    out.Message,
		Degraded: out.Degraded,
		History:  s.History,
	}, nil
}

// finishReply clears the pending flag and appends reply when the session still shows the same scan.
func (uc *implUseCase) finishReply(ctx context.Context, sessionID, scanID string, reply *model.ChatMessage) (model.Session, error) {
	return uc.repo.Update(ctx, sessionID, func(s *model.Session) error {
		if s.ScanID != scanID || s.State != model.StateComplete {
			return errStaleResult
		}
		s.ChatPending = false
		if reply != nil {
			s.History = append(s.History, *reply)
		}
		s.UpdatedAt = uc.now().UTC()
		return nil
	})
}
