package webpage

import (
	"context"

	pkgHTTP "webaudit-srv/pkg/http"
)

// IFetcher downloads a page and returns its readable text.
// Implementations are safe for concurrent use.
type IFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// NewFetcher creates a readability based fetcher. Returns the interface.
func NewFetcher(cfg Config) IFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &fetcherImpl{
		client: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:      cfg.Timeout,
			Retries:      cfg.Retries,
			RetryWait:    DefaultRetryWait,
			UserAgent:    cfg.UserAgent,
			MaxBodyBytes: cfg.MaxBytes,
		}),
		cfg: cfg,
	}
}
