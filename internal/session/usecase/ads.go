package usecase

import (
	"context"
	"errors"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository"
)

// GenerateAds - Ad campaign from the session report. Regenerating replaces the stored one.
func (uc *implUseCase) GenerateAds(ctx context.Context, id string) (model.AdCampaign, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.AdCampaign{}, mapRepoError(err)
	}
	if s.State != model.StateComplete || s.Report == nil {
		return model.AdCampaign{}, session.ErrNoReport
	}

	campaign, err := uc.audit.GenerateAds(ctx, audit.AdsInput{
		URL:      s.Report.TargetURL,
		Keywords: s.Report.Keywords,
	})
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.GenerateAds: audit.GenerateAds failed: %v", err)
		return model.AdCampaign{}, err
	}

	_, err = uc.repo.Update(ctx, id, func(cur *model.Session) error {
		if cur.ScanID != s.ScanID || cur.State != model.StateComplete {
			return errStaleResult
		}
		stored := campaign
		cur.AdCampaign = &stored
		cur.UpdatedAt = uc.now().UTC()
		return nil
	})
	switch {
	case errors.Is(err, errStaleResult), errors.Is(err, repository.ErrNotFound):
		uc.l.Infof(ctx, "session.usecase.GenerateAds: session %s changed, campaign not stored", id)
	case err != nil:
		return model.AdCampaign{}, err
	}
	return campaign, nil
}
