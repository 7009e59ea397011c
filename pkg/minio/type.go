package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config points the archive at one bucket.
type Config struct {
	Endpoint  string `validate:"required"`
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`
	Region    string `validate:"required"`
	Bucket    string `validate:"required,bucketname"`
	UseSSL    bool
}

// Object is a small in-memory payload such as a rendered report.
type Object struct {
	Key         string `validate:"required,objectkey"`
	Data        []byte `validate:"required,min=1,max=104857600"`
	ContentType string `validate:"required"`
	// FileName is kept as object metadata and reused for downloads.
	FileName string
	Metadata map[string]string
}

type ObjectInfo struct {
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	ETag       string    `json:"etag"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type PresignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type implMinIO struct {
	client    *minio.Client
	cfg       Config
	now       func() time.Time
	mu        sync.RWMutex
	connected bool
}
