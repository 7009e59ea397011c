package http

import "context"

// IClient is the outbound HTTP surface shared by the Gemini gateway,
// the page fetcher and the Discord webhook. Safe for concurrent use.
type IClient interface {
	// Get returns the (possibly truncated) body and the status code.
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	// Post sends body as JSON.
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient builds a client from cfg, filling zero values with defaults.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &clientImpl{rc: newRestyClient(cfg), cfg: cfg}
}
