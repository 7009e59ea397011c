package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config describes one Redis endpoint. Zero PoolSize and DialTimeout
// fall back to go-redis defaults.
type Config struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

type redisImpl struct {
	client *goredis.Client
}
