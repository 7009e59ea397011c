package usecase

import (
	"context"
	"fmt"

	"webaudit-srv/internal/export"
	"webaudit-srv/internal/session"
	"webaudit-srv/pkg/minio"
)

// Export - Render the session report as a downloadable file
func (uc *implUseCase) Export(ctx context.Context, input session.ExportInput) (export.File, error) {
	s, err := uc.repo.Get(ctx, input.SessionID)
	if err != nil {
		return export.File{}, mapRepoError(err)
	}
	if s.Report == nil {
		return export.File{}, session.ErrNoReport
	}
	f, err := export.Render(input.Format, *s.Report)
	if err != nil {
		return export.File{}, err
	}
	return f, nil
}

// Archive - Upload the export to object storage and hand out a presigned link
func (uc *implUseCase) Archive(ctx context.Context, input session.ExportInput) (session.ArchiveOutput, error) {
	if uc.storage == nil {
		return session.ArchiveOutput{}, session.ErrArchiveDisabled
	}
	f, err := uc.Export(ctx, input)
	if err != nil {
		return session.ArchiveOutput{}, err
	}

	key := fmt.Sprintf("%s/%s/%s/%s",
		uc.cfg.ArchivePrefix, uc.now().UTC().Format("2006/01/02"), input.SessionID, f.Name)
	if _, err := uc.storage.Put(ctx, minio.Object{
		Key:         key,
		Data:        f.Data,
		ContentType: f.ContentType,
		FileName:    f.Name,
		Metadata:    map[string]string{"session-id": input.SessionID},
	}); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Archive: Put failed: %v", err)
		return session.ArchiveOutput{}, err
	}

	link, err := uc.storage.PresignGet(ctx, key, f.Name, uc.cfg.ArchiveExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Archive: PresignGet failed: %v", err)
		if rmErr := uc.storage.Remove(ctx, key); rmErr != nil {
			uc.l.Warnf(ctx, "session.usecase.Archive: Remove orphan %s failed: %v", key, rmErr)
		}
		return session.ArchiveOutput{}, err
	}

	return session.ArchiveOutput{
		URL:        link.URL,
		ExpiresAt:  link.ExpiresAt,
		ObjectName: key,
		FileName:   f.Name,
	}, nil
}
