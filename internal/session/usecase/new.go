package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository"
	"webaudit-srv/pkg/kafka"
	"webaudit-srv/pkg/log"
	"webaudit-srv/pkg/minio"
)

const (
	DefaultScanTimeout   = 120 * time.Second
	DefaultArchiveExpiry = 24 * time.Hour
	DefaultArchivePrefix = "reports"

	// Bounds the final state write of a scan, which runs after the scan context may have expired.
	completeTimeout = 5 * time.Second
)

type Config struct {
	ScanTimeout   time.Duration
	ArchiveExpiry time.Duration
	ArchivePrefix string
}

// Deps groups the collaborators of the session usecase. Storage and Producer are optional.
type Deps struct {
	Repo     repository.Repository
	Audit    audit.UseCase
	Chat     chat.UseCase
	Storage  minio.Storage
	Producer kafka.IProducer
}

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	audit    audit.UseCase
	chat     chat.UseCase
	storage  minio.Storage
	producer kafka.IProducer
	cfg      Config
	now      func() time.Time
	newID    func() string

	mu      sync.Mutex
	closed  bool
	scans   sync.WaitGroup
	scanCtx context.Context
	cancel  context.CancelFunc
}

// New - Factory function
func New(l log.Logger, deps Deps, cfg Config) session.UseCase {
	if cfg.ScanTimeout <= 0 {
		cfg.ScanTimeout = DefaultScanTimeout
	}
	if cfg.ArchiveExpiry <= 0 {
		cfg.ArchiveExpiry = DefaultArchiveExpiry
	}
	if cfg.ArchivePrefix == "" {
		cfg.ArchivePrefix = DefaultArchivePrefix
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &implUseCase{
		l:        l,
		repo:     deps.Repo,
		audit:    deps.Audit,
		chat:     deps.Chat,
		storage:  deps.Storage,
		producer: deps.Producer,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		scanCtx:  ctx,
		cancel:   cancel,
	}
}
