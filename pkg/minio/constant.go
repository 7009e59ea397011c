package minio

import "time"

const (
	maxIdleConnsPerHost = 16
	idleConnTimeout     = 90 * time.Second
)

const (
	// MaxPresignExpiry is the S3 limit for presigned URLs.
	MaxPresignExpiry     = 7 * 24 * time.Hour
	DefaultPresignExpiry = 24 * time.Hour
	// DefaultEndpointPort is appended to an endpoint given without a port.
	DefaultEndpointPort = ":9000"

	metaFileName = "file-name"
)
