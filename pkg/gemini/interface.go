package gemini

import (
	"context"
	"time"

	pkghttp "webaudit-srv/pkg/http"

	"golang.org/x/time/rate"
)

//go:generate mockery --name IGemini

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use. Calls are never retried internally.
type IGemini interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Chat(ctx context.Context, req ChatRequest) (GenerateResponse, error)
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
// An empty APIKey is accepted; every call then fails with ErrAPIKeyRequired without touching the network.
func NewGemini(cfg GeminiConfig) IGemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	return &geminiImpl{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}
}
