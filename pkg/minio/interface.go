package minio

import (
	"context"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

//go:generate mockery --name Storage

// Storage archives exported reports in a single bucket and hands out
// time limited download links. Safe for concurrent use.
type Storage interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates the configured bucket when missing.
	EnsureBucket(ctx context.Context) error
	Bucket() string

	Put(ctx context.Context, obj Object) (ObjectInfo, error)
	// PresignGet returns a GET link for key. A zero expiry means DefaultPresignExpiry.
	// When fileName is set the download is served as an attachment with that name.
	PresignGet(ctx context.Context, key, fileName string, expiry time.Duration) (PresignedURL, error)
	Remove(ctx context.Context, key string) error
}

// NewMinIO builds the client without touching the network; call Connect next.
func NewMinIO(cfg Config) (Storage, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{client: client, cfg: cfg, now: time.Now}, nil
}
