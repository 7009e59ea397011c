package http

import "time"

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 1 * time.Second
	// DefaultUserAgent is sent when ClientConfig.UserAgent is empty.
	DefaultUserAgent = "webaudit-srv/1.0"
)

// DefaultConfig returns the settings used for upstream API calls.
// Body size is not capped.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		UserAgent: DefaultUserAgent,
	}
}
