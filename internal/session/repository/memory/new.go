package memory

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/log"
)

const (
	DefaultTTL       = 24 * time.Hour
	DefaultSweepSpec = "@every 1m"
)

type Options struct {
	TTL       time.Duration
	SweepSpec string
}

type entry struct {
	session   model.Session
	expiresAt time.Time
}

// Repository keeps sessions in process memory. Expired sessions are invisible immediately
// and removed by a cron sweep once Start is called.
type Repository struct {
	l     log.Logger
	mu    sync.Mutex
	items map[string]entry
	ttl   time.Duration
	spec  string
	now   func() time.Time
	cron  *cron.Cron
}

// New - Factory
func New(l log.Logger, opts Options) *Repository {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.SweepSpec == "" {
		opts.SweepSpec = DefaultSweepSpec
	}
	return &Repository{
		l:     l,
		items: make(map[string]entry),
		ttl:   opts.TTL,
		spec:  opts.SweepSpec,
		now:   time.Now,
		cron:  cron.New(),
	}
}
