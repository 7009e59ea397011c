package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	ExtractorFence = "fence"
	ExtractorScan  = "scan"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	Static     StaticConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Audit pipeline and chat
	Audit AuditConfig
	Chat  ChatConfig

	// Session - state machine storage
	Session SessionConfig

	// Redis - Session backend
	Redis RedisConfig

	// MinIO - Report archive
	MinIO MinIOConfig

	// Kafka - Audit outcome events
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the browser origins allowed to call the API. Empty means the environment default.
type CORSConfig struct {
	AllowedOrigins []string
}

// StaticConfig points at the built dashboard.
type StaticConfig struct {
	Dir string
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// AuditConfig tunes the acquisition pipeline.
type AuditConfig struct {
	Timeout          time.Duration
	Temperature      float64
	AdsTemperature   float64
	Extractor        string
	PageSnapshot     bool
	SnapshotMaxChars int
	FetchTimeout     time.Duration
}

type ChatConfig struct {
	Temperature float64
}

// SessionConfig selects the session backend and the archive layout.
type SessionConfig struct {
	Backend       string
	TTL           time.Duration
	SweepSpec     string
	KeyPrefix     string
	ArchiveExpiry time.Duration
	ArchivePrefix string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	Topic    string
	ClientID string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper. A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("webaudit-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/webaudit/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Well known names used by hosting platforms and the dashboard build
	_ = v.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY", "API_KEY")

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	cfg.Static.Dir = v.GetString("static.dir")

	// Gemini
	cfg.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.BaseURL = v.GetString("gemini.base_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.RequestsPerMinute = v.GetInt("gemini.requests_per_minute")

	// Audit & Chat
	cfg.Audit.Timeout = v.GetDuration("audit.timeout")
	cfg.Audit.Temperature = v.GetFloat64("audit.temperature")
	cfg.Audit.AdsTemperature = v.GetFloat64("audit.ads_temperature")
	cfg.Audit.Extractor = strings.ToLower(v.GetString("audit.extractor"))
	cfg.Audit.PageSnapshot = v.GetBool("audit.page_snapshot")
	cfg.Audit.SnapshotMaxChars = v.GetInt("audit.snapshot_max_chars")
	cfg.Audit.FetchTimeout = v.GetDuration("audit.fetch_timeout")
	cfg.Chat.Temperature = v.GetFloat64("chat.temperature")

	// Session
	cfg.Session.Backend = strings.ToLower(v.GetString("session.backend"))
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.SweepSpec = v.GetString("session.sweep_spec")
	cfg.Session.KeyPrefix = v.GetString("session.key_prefix")
	cfg.Session.ArchiveExpiry = v.GetDuration("session.archive_expiry")
	cfg.Session.ArchivePrefix = v.GetString("session.archive_prefix")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")

	// MinIO
	cfg.MinIO.Enabled = v.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = v.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = v.GetString("minio.access_key")
	cfg.MinIO.SecretKey = v.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = v.GetBool("minio.use_ssl")
	cfg.MinIO.Region = v.GetString("minio.region")
	cfg.MinIO.Bucket = v.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Kafka.ClientID = v.GetString("kafka.client_id")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	return cfg
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("static.dir", "./dist")

	// 1. Gemini
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.requests_per_minute", 30)

	// 2. Audit pipeline
	v.SetDefault("audit.timeout", "120s")
	v.SetDefault("audit.temperature", 0.3)
	v.SetDefault("audit.ads_temperature", 0.7)
	v.SetDefault("audit.extractor", ExtractorFence)
	v.SetDefault("audit.page_snapshot", false)
	v.SetDefault("audit.snapshot_max_chars", 6000)
	v.SetDefault("audit.fetch_timeout", "10s")
	v.SetDefault("chat.temperature", 0.7)

	// 3. Session
	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.sweep_spec", "@every 1m")
	v.SetDefault("session.key_prefix", "webaudit:session:")
	v.SetDefault("session.archive_expiry", "24h")
	v.SetDefault("session.archive_prefix", "reports")

	// 4. Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// 5. MinIO
	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.bucket", "webaudit-reports")

	// 6. Kafka
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "webaudit.audits")
	v.SetDefault("kafka.client_id", "webaudit-srv")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("session.backend must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, cfg.Session.Backend)
	}

	switch cfg.Audit.Extractor {
	case ExtractorFence, ExtractorScan:
	default:
		return fmt.Errorf("audit.extractor must be %q or %q, got %q", ExtractorFence, ExtractorScan, cfg.Audit.Extractor)
	}

	if cfg.Audit.Timeout <= 0 {
		return fmt.Errorf("audit.timeout must be positive")
	}

	if cfg.Session.Backend == SessionBackendRedis && cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required when session.backend is redis")
	}

	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required when minio is enabled")
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required when minio is enabled")
		}
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	return nil
}
