package webpage

import (
	"time"

	pkgHTTP "webaudit-srv/pkg/http"
)

// Config holds fetcher settings.
type Config struct {
	Timeout   time.Duration
	Retries   int
	UserAgent string
	MaxBytes  int
}

type fetcherImpl struct {
	client pkgHTTP.IClient
	cfg    Config
}
