package discord

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	pkgHTTP "webaudit-srv/pkg/http"
	"webaudit-srv/pkg/log"
)

// IDiscord posts operational alerts to a Discord channel.
// Safe for concurrent use.
type IDiscord interface {
	// SendError reports a 5xx or a recovered panic.
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
	Close() error
}

type DiscordWebhook struct {
	ID    string
	Token string
}

func NewDiscordWebhook(id, token string) (*DiscordWebhook, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &DiscordWebhook{ID: id, Token: token}, nil
}

func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	return NewWithConfig(l, webhook, DefaultConfig())
}

// NewWithConfig allows tests to point BaseURL at a local server.
// AlertsPerMin <= 0 disables throttling.
func NewWithConfig(l log.Logger, webhook *DiscordWebhook, cfg Config) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.AlertsPerMin > 0 {
		burst := max(cfg.AlertBurstMax, 1)
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.AlertsPerMin)/60), burst)
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.RetryCount,
			RetryWait: cfg.RetryDelay,
		}),
		limiter: limiter,
		now:     time.Now,
	}, nil
}
