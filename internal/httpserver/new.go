package httpserver

import (
	"errors"

	"webaudit-srv/config"
	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository/memory"
	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/gemini"
	"webaudit-srv/pkg/kafka"
	"webaudit-srv/pkg/log"
	"webaudit-srv/pkg/minio"
	pkgRedis "webaudit-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Model gateway
	geminiClient gemini.IGemini

	// Optional infrastructure
	redisClient   pkgRedis.IRedis
	minioClient   minio.Storage
	kafkaProducer kafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Domain usecases, shared across handlers
	auditUC       audit.UseCase
	chatUC        chat.UseCase
	sessionUC     session.UseCase
	memorySession *memory.Repository
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Model gateway
	Gemini gemini.IGemini

	// Optional infrastructure. Nil disables the feature that needs it.
	RedisClient   pkgRedis.IRedis
	MinIO         minio.Storage
	KafkaProducer kafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		geminiClient: cfg.Gemini,

		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	if srv.config.Session.Backend == config.SessionBackendRedis && srv.redisClient == nil {
		return errors.New("redisClient is required for the redis session backend")
	}

	return nil
}
