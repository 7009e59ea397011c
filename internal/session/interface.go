package session

import (
	"context"

	"webaudit-srv/internal/export"
	"webaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context) (model.Session, error)
	Get(ctx context.Context, id string) (model.Session, error)
	Delete(ctx context.Context, id string) error

	// Submit starts a background scan. Only allowed from IDLE.
	Submit(ctx context.Context, input SubmitInput) (model.Session, error)
	// Reset returns the session to IDLE. A scan still running is abandoned.
	Reset(ctx context.Context, id string) (model.Session, error)

	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	GenerateAds(ctx context.Context, id string) (model.AdCampaign, error)

	Export(ctx context.Context, input ExportInput) (export.File, error)
	// Archive uploads the export to object storage and returns a presigned download URL.
	Archive(ctx context.Context, input ExportInput) (ArchiveOutput, error)

	// Shutdown rejects new scans and waits for running ones.
	Shutdown(ctx context.Context) error
}
