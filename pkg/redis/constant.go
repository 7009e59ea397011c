package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the initial ping.
const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")

	// ErrNil is returned by Get for a missing key.
	ErrNil = goredis.Nil

	// ErrTxFailed is returned by Watch when a watched key changed before EXEC.
	ErrTxFailed = goredis.TxFailedErr
)
