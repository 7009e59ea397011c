package usecase

import (
	"context"
	"fmt"
	"time"

	"webaudit-srv/internal/audit"
)

// Audit - Acquisition pipeline
// Flow: normalize URL → ordered attempts (search, then offline) → extract → upgrade → validate
func (uc *implUseCase) Audit(ctx context.Context, input audit.AuditInput) (audit.AuditOutput, error) {
	startTime := time.Now()

	targetURL, err := audit.NormalizeURL(input.URL)
	if err != nil {
		return audit.AuditOutput{}, err
	}

	res, err := uc.runPipeline(ctx, targetURL, uc.strategies())
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Audit: all attempts failed for %s (%s): %v", targetURL, audit.Kind(err), err)
		return audit.AuditOutput{}, err
	}

	report, err := uc.parseReport(res.resp.Text, targetURL)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Audit: parse report from %s attempt failed: %v", res.strategy, err)
		uc.l.Debugf(ctx, "audit.usecase.Audit: raw model output: %s", res.resp.Text)
		return audit.AuditOutput{}, fmt.Errorf("%w: %w", audit.ErrMalformedReport, err)
	}

	uc.l.Infof(ctx, "audit.usecase.Audit: %s scored %d via %s in %s", targetURL, report.OverallScore, res.strategy, time.Since(startTime))

	return audit.AuditOutput{
		Report:           report,
		Strategy:         res.strategy,
		Attempts:         res.attempts,
		GroundingSources: res.resp.GroundingSources,
		Duration:         time.Since(startTime),
	}, nil
}
