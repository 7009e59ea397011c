package usecase

import (
	"context"
	"strings"

	"webaudit-srv/internal/audit"
	"webaudit-srv/pkg/gemini"
)

// strategy is one attempt of the pipeline. Strategies run in order, one at a time,
// and the first one that returns text wins.
type strategy struct {
	name   string
	search bool
	prompt func(ctx context.Context, targetURL string) string
}

type attemptResult struct {
	strategy string
	attempts int
	resp     gemini.GenerateResponse
}

func (uc *implUseCase) strategies() []strategy {
	return []strategy{
		{name: audit.StrategyLiveSearch, search: true, prompt: uc.searchPrompt},
		{name: audit.StrategyOffline, search: false, prompt: uc.offlinePrompt},
	}
}

func (uc *implUseCase) runPipeline(ctx context.Context, targetURL string, strategies []strategy) (attemptResult, error) {
	var lastErr error
	for i, s := range strategies {
		resp, err := uc.gemini.Generate(ctx, gemini.GenerateRequest{
			SystemInstruction: auditSystemInstruction,
			Prompt:            s.prompt(ctx, targetURL),
			EnableSearch:      s.search,
			Temperature:       uc.cfg.Temperature,
		})
		if err == nil && strings.TrimSpace(resp.Text) == "" {
			err = gemini.ErrEmptyResponse
		}
		if err == nil {
			return attemptResult{strategy: s.name, attempts: i + 1, resp: resp}, nil
		}

		uc.l.Warnf(ctx, "audit.usecase.runPipeline: attempt %d/%d (%s) failed: %v", i+1, len(strategies), s.name, err)
		lastErr = err
	}
	return attemptResult{attempts: len(strategies)}, classify(lastErr)
}
