package audit

import (
	"time"

	"webaudit-srv/internal/model"
)

const (
	// StrategyLiveSearch asks the model to research the site with web search first.
	StrategyLiveSearch = "live-search"
	// StrategyOffline asks for a best effort analysis from the URL alone.
	StrategyOffline = "offline"
)

type AuditInput struct {
	URL string
}

type AuditOutput struct {
	Report           model.Report
	Strategy         string
	Attempts         int
	GroundingSources []string
	Duration         time.Duration
}

type AdsInput struct {
	URL      string
	Keywords []string
}
