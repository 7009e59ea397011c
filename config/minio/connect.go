package minio

import (
	"context"
	"fmt"
	"sync"

	"webaudit-srv/config"
	"webaudit-srv/pkg/minio"
)

var (
	instance minio.Storage
	mu       sync.RWMutex
)

// Connect creates the report archive client once, connects and makes sure the bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.Storage, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// HealthCheck checks if MinIO connection is healthy
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("minio client not initialized")
	}
	return instance.HealthCheck(ctx)
}

// Disconnect closes the MinIO client and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
