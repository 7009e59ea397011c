package redis

import (
	"time"

	"webaudit-srv/internal/session/repository"
	pkgRedis "webaudit-srv/pkg/redis"
)

const (
	DefaultTTL       = 24 * time.Hour
	DefaultKeyPrefix = "webaudit:session:"
	maxTxRetries     = 3
)

type Options struct {
	TTL       time.Duration
	KeyPrefix string
}

type implRepository struct {
	redis  pkgRedis.IRedis
	ttl    time.Duration
	prefix string
}

// New - Factory
func New(client pkgRedis.IRedis, opts Options) repository.Repository {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}
	return &implRepository{
		redis:  client,
		ttl:    opts.TTL,
		prefix: opts.KeyPrefix,
	}
}
