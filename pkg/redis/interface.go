package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis is the subset of Redis used for session storage.
// Safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// SetNX reports whether the key was absent and is now set.
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	// Get returns ErrNil for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
	// Watch runs fn inside WATCH keys ... EXEC. A concurrent write to
	// any key makes it return ErrTxFailed.
	Watch(ctx context.Context, fn func(tx *goredis.Tx) error, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// NewRedis dials and pings the server before returning.
func NewRedis(cfg Config) (IRedis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	return &redisImpl{client: client}, nil
}

func (cfg Config) validate() error {
	if cfg.Host == "" {
		return ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}
