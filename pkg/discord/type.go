package discord

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	pkgHTTP "webaudit-srv/pkg/http"
	"webaudit-srv/pkg/log"
)

// Config tunes the webhook client. AlertsPerMin caps how many embeds
// leave the process, so a failing upstream cannot flood the channel.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryCount    int
	RetryDelay    time.Duration
	Username      string
	AlertsPerMin  int
	AlertBurstMax int
}

type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  pkgHTTP.IClient
	limiter *rate.Limiter
	closed  atomic.Bool
	now     func() time.Time
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds"`
}
