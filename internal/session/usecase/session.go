package usecase

import (
	"context"
	"errors"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository"
)

// Create - New IDLE session
func (uc *implUseCase) Create(ctx context.Context) (model.Session, error) {
	now := uc.now().UTC()
	s := model.Session{
		ID:        uc.newID(),
		State:     model.StateIdle,
		History:   []model.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Create: repo.Create failed: %v", err)
		return model.Session{}, err
	}
	return s, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Session, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Session{}, mapRepoError(err)
	}
	return s, nil
}

// Delete - Destroy a session. A scan still running for it is dropped when it finishes.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	return mapRepoError(uc.repo.Delete(ctx, id))
}

// Reset - Back to IDLE from any state
func (uc *implUseCase) Reset(ctx context.Context, id string) (model.Session, error) {
	s, err := uc.repo.Update(ctx, id, func(s *model.Session) error {
		if s.State == model.StateIdle {
			return nil
		}
		if s.State == model.StateScanning {
			uc.l.Infof(ctx, "session.usecase.Reset: abandoning scan %s of session %s", s.ScanID, s.ID)
		}
		clearResult(s)
		s.State = model.StateIdle
		s.TargetURL = ""
		s.ScanID = ""
		s.UpdatedAt = uc.now().UTC()
		return nil
	})
	if err != nil {
		return model.Session{}, mapRepoError(err)
	}
	return s, nil
}

func clearResult(s *model.Session) {
	s.Report = nil
	s.ErrorKind = ""
	s.ErrorMessage = ""
	s.History = []model.ChatMessage{}
	s.ChatPending = false
	s.AdCampaign = nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return session.ErrNotFound
	}
	return err
}
