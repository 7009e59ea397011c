package usecase

import (
	"time"

	"webaudit-srv/internal/audit"
	"webaudit-srv/pkg/extract"
	"webaudit-srv/pkg/gemini"
	"webaudit-srv/pkg/log"
)

// Config tunes the pipeline.
type Config struct {
	Temperature      float64
	AdsTemperature   float64
	PageSnapshot     bool
	SnapshotMaxChars int
}

type implUseCase struct {
	l         log.Logger
	gemini    gemini.IGemini
	extractor extract.IExtractor
	fetcher   audit.PageFetcher
	cfg       Config
	now       func() time.Time
}

// New - Factory function. fetcher may be nil; it is only used when cfg.PageSnapshot is set.
func New(
	l log.Logger,
	gemini gemini.IGemini,
	extractor extract.IExtractor,
	fetcher audit.PageFetcher,
	cfg Config,
) audit.UseCase {
	if extractor == nil {
		extractor = extract.New()
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.AdsTemperature <= 0 {
		cfg.AdsTemperature = defaultAdsTemperature
	}
	if cfg.SnapshotMaxChars <= 0 {
		cfg.SnapshotMaxChars = defaultSnapshotMaxChars
	}
	return &implUseCase{
		l:         l,
		gemini:    gemini,
		extractor: extractor,
		fetcher:   fetcher,
		cfg:       cfg,
		now:       time.Now,
	}
}
