package main

import (
	"context"
	"fmt"

	"webaudit-srv/config"
	configKafka "webaudit-srv/config/kafka"
	configMinio "webaudit-srv/config/minio"
	configRedis "webaudit-srv/config/redis"
	"webaudit-srv/internal/httpserver"
	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/gemini"
	"webaudit-srv/pkg/kafka"
	"webaudit-srv/pkg/log"
	"webaudit-srv/pkg/minio"
	pkgRedis "webaudit-srv/pkg/redis"
)

// @title       Web Optimizer Pro Audit API
// @description AI website audit, consultant chat and report export.
// @version     2
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file, .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize Gemini
	// A missing key is not fatal: every audit then fails with a configuration error.
	if cfg.Gemini.APIKey == "" {
		logger.Warnf(ctx, "Gemini API key is not set (gemini.api_key, GEMINI_API_KEY or API_KEY); audits will fail until it is configured")
	}
	geminiClient := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		BaseURL:           cfg.Gemini.BaseURL,
		Timeout:           cfg.Gemini.Timeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	})
	logger.Infof(ctx, "Gemini client initialized with model %s", cfg.Gemini.Model)

	// 4. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken); err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
	} else if discordClient, err = discord.New(logger, webhook); err != nil {
		logger.Warnf(ctx, "Discord client not initialized: %v", err)
		discordClient = nil
	} else {
		defer discordClient.Close()
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis (session backend)
	var redisClient pkgRedis.IRedis
	if cfg.Session.Backend == config.SessionBackendRedis {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 6. Initialize MinIO (optional report archive)
	var minioClient minio.Storage
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer configMinio.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 7. Initialize Kafka producer (optional audit events)
	var kafkaProducer kafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Kafka producer: ", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 8. Initialize HTTP server
	// Serves the JSON API and the built dashboard; owns graceful shutdown of running scans
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		Gemini: geminiClient,

		RedisClient:   redisClient,
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if discordClient != nil {
		_ = discordClient.SendInfo(ctx, "webaudit-srv starting",
			fmt.Sprintf("env=%s session_backend=%s archive=%t events=%t",
				cfg.Environment.Name, cfg.Session.Backend, minioClient != nil, kafkaProducer != nil))
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
