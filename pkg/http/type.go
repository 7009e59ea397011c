package http

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientConfig configures a resty backed client.
//
// Retries counts extra attempts after the first one, so 0 means a single try.
// MaxBodyBytes truncates response bodies; 0 keeps them whole.
type ClientConfig struct {
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
	UserAgent    string
	MaxBodyBytes int
}

type clientImpl struct {
	rc  *resty.Client
	cfg ClientConfig
}
