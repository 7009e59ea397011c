package repository

import (
	"context"
	"errors"

	"webaudit-srv/internal/model"
)

var (
	ErrNotFound = errors.New("session repository: not found")
	ErrConflict = errors.New("session repository: concurrent update conflict")
	ErrExists   = errors.New("session repository: already exists")
)

// Repository stores sessions. Update is atomic per session: fn sees the latest state and
// its changes are saved only when it returns nil.
type Repository interface {
	Create(ctx context.Context, s model.Session) error
	Get(ctx context.Context, id string) (model.Session, error)
	Update(ctx context.Context, id string, fn func(s *model.Session) error) (model.Session, error)
	Delete(ctx context.Context, id string) error
}

// Clone copies the mutable parts of s. Report and AdCampaign are replaced, never mutated.
func Clone(s model.Session) model.Session {
	if s.History != nil {
		h := make([]model.ChatMessage, len(s.History))
		copy(h, s.History)
		s.History = h
	}
	return s
}
