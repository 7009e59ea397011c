package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	_, err := m.client.BucketExists(ctx, m.cfg.Bucket)

	m.mu.Lock()
	m.connected = err == nil
	m.mu.Unlock()

	return wrapError(err, "connect")
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return NewConnectionError(errors.New("not connected"))
	}
	_, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	return wrapError(err, "health_check")
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) Bucket() string {
	return m.cfg.Bucket
}

func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return wrapError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	err = m.client.MakeBucket(ctx, m.cfg.Bucket, minio.MakeBucketOptions{Region: m.cfg.Region})
	if err != nil && minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
		return nil
	}
	return wrapError(err, "make_bucket")
}

func (m *implMinIO) Put(ctx context.Context, obj Object) (ObjectInfo, error) {
	if err := validateObject(obj); err != nil {
		return ObjectInfo{}, err
	}

	meta := make(map[string]string, len(obj.Metadata)+1)
	for k, v := range obj.Metadata {
		meta[k] = v
	}
	if obj.FileName != "" {
		meta[metaFileName] = obj.FileName
	}

	info, err := m.client.PutObject(ctx, m.cfg.Bucket, obj.Key, bytes.NewReader(obj.Data), int64(len(obj.Data)),
		minio.PutObjectOptions{ContentType: obj.ContentType, UserMetadata: meta})
	if err != nil {
		return ObjectInfo{}, wrapError(err, "put")
	}
	return ObjectInfo{
		Key:        obj.Key,
		Size:       info.Size,
		ETag:       info.ETag,
		UploadedAt: m.now().UTC(),
	}, nil
}

func (m *implMinIO) PresignGet(ctx context.Context, key, fileName string, expiry time.Duration) (PresignedURL, error) {
	if err := validateKey(key); err != nil {
		return PresignedURL{}, err
	}
	expiry, err := presignExpiry(expiry)
	if err != nil {
		return PresignedURL{}, err
	}

	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	u, err := m.client.PresignedGetObject(ctx, m.cfg.Bucket, key, expiry, params)
	if err != nil {
		return PresignedURL{}, wrapError(err, "presign_get")
	}
	return PresignedURL{URL: u.String(), ExpiresAt: m.now().Add(expiry).UTC()}, nil
}

func (m *implMinIO) Remove(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return wrapError(m.client.RemoveObject(ctx, m.cfg.Bucket, key, minio.RemoveObjectOptions{}), "remove")
}

// wrapError maps minio-go errors to StorageError codes. A nil err stays nil.
func wrapError(err error, op string) error {
	if err == nil {
		return nil
	}
	se := &StorageError{Operation: op, Cause: err}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "":
		se.Code, se.Message = ErrCodeConnection, err.Error()
	case "NoSuchBucket":
		se.Code, se.Message = ErrCodeBucketNotFound, resp.Message
	case "NoSuchKey":
		se.Code, se.Message = ErrCodeObjectNotFound, resp.Message
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		se.Code, se.Message = ErrCodePermission, "access denied"
	default:
		se.Code, se.Message = ErrCodeConnection, "unexpected response "+resp.Code
	}
	return se
}
