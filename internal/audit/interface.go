package audit

import (
	"context"

	"webaudit-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Audit turns a target URL into a validated Report.
	Audit(ctx context.Context, input AuditInput) (AuditOutput, error)
	// GenerateAds builds a search ad campaign for a URL and its keywords.
	GenerateAds(ctx context.Context, input AdsInput) (model.AdCampaign, error)
}

// PageFetcher returns the readable text of a web page.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}
