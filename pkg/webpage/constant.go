package webpage

import (
	"errors"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultMaxBytes caps the downloaded HTML.
	DefaultMaxBytes  = 2 << 20
	// Some sites refuse requests without a browser-like agent.
	DefaultUserAgent = "Mozilla/5.0 (compatible; webaudit-srv/1.0; +https://github.com/webaudit-srv)"
)

var (
	ErrFetchFailed = errors.New("webpage: fetch failed")
	ErrNoContent   = errors.New("webpage: no readable content")
)
