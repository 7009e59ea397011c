package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	errClosed          = errors.New("discord: client closed")
	// ErrThrottled is returned when an alert was dropped by the rate limit.
	ErrThrottled = errors.New("discord: alert throttled")
)
