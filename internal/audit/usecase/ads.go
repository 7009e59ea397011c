package usecase

import (
	"context"
	"fmt"
	"strings"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/extract"
	"webaudit-srv/pkg/gemini"
)

// GenerateAds - single attempt, no search
func (uc *implUseCase) GenerateAds(ctx context.Context, input audit.AdsInput) (model.AdCampaign, error) {
	targetURL, err := audit.NormalizeURL(input.URL)
	if err != nil {
		return model.AdCampaign{}, err
	}

	resp, err := uc.gemini.Generate(ctx, gemini.GenerateRequest{
		Prompt:      adsPrompt(targetURL, input.Keywords),
		Temperature: uc.cfg.AdsTemperature,
	})
	if err == nil && strings.TrimSpace(resp.Text) == "" {
		err = gemini.ErrEmptyResponse
	}
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.GenerateAds: generate failed for %s: %v", targetURL, err)
		return model.AdCampaign{}, classify(err)
	}

	var campaign model.AdCampaign
	if err := extract.Decode(uc.extractor, resp.Text, &campaign); err != nil {
		uc.l.Errorf(ctx, "audit.usecase.GenerateAds: decode failed: %v", err)
		uc.l.Debugf(ctx, "audit.usecase.GenerateAds: raw model output: %s", resp.Text)
		return model.AdCampaign{}, fmt.Errorf("%w: %w", audit.ErrMalformedReport, err)
	}
	if err := validateAdCampaign(&campaign); err != nil {
		uc.l.Errorf(ctx, "audit.usecase.GenerateAds: invalid campaign: %v", err)
		return model.AdCampaign{}, fmt.Errorf("%w: %w", audit.ErrMalformedReport, &extract.MalformedError{Raw: resp.Text, Err: err})
	}
	return campaign, nil
}
