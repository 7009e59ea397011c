package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Endpoint:  "localhost",
		AccessKey: "minio",
		SecretKey: "minio123",
		Region:    "us-east-1",
		Bucket:    "webaudit-reports",
	}
}

func TestNewMinIO(t *testing.T) {
	s, err := NewMinIO(testConfig())
	require.NoError(t, err)
	assert.Equal(t, "webaudit-reports", s.Bucket())
	assert.Equal(t, "localhost:9000", s.(*implMinIO).cfg.Endpoint)

	tcs := map[string]func(c *Config){
		"no bucket":          func(c *Config) { c.Bucket = "" },
		"uppercase bucket":   func(c *Config) { c.Bucket = "Reports" },
		"double hyphen":      func(c *Config) { c.Bucket = "web--audit" },
		"short bucket":       func(c *Config) { c.Bucket = "ab" },
		"missing secret key": func(c *Config) { c.SecretKey = "" },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(&cfg)
			_, err := NewMinIO(cfg)
			assert.True(t, IsCode(err, ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestValidateObject(t *testing.T) {
	valid := func() Object {
		return Object{
			Key:         "reports/2026/10/19/s1/audit.pdf",
			Data:        []byte("%PDF"),
			ContentType: "application/pdf",
		}
	}
	require.NoError(t, validateObject(valid()))

	tcs := map[string]func(o *Object){
		"leading slash":   func(o *Object) { o.Key = "/x.pdf" },
		"trailing slash":  func(o *Object) { o.Key = "reports/" },
		"backslash":       func(o *Object) { o.Key = `reports\x.pdf` },
		"empty data":      func(o *Object) { o.Data = nil },
		"no content type": func(o *Object) { o.ContentType = "" },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			o := valid()
			mutate(&o)
			err := validateObject(o)
			assert.True(t, IsCode(err, ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestPresignExpiry(t *testing.T) {
	got, err := presignExpiry(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPresignExpiry, got)

	got, err = presignExpiry(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, got)

	_, err = presignExpiry(-time.Second)
	assert.Error(t, err)
	_, err = presignExpiry(8 * 24 * time.Hour)
	assert.Error(t, err)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil, "op"))

	err := wrapError(minio.ErrorResponse{Code: "NoSuchKey", Message: "missing"}, "presign_get")
	assert.True(t, IsCode(err, ErrCodeObjectNotFound))

	err = wrapError(minio.ErrorResponse{Code: "SignatureDoesNotMatch"}, "put")
	assert.True(t, IsCode(err, ErrCodePermission))

	err = wrapError(errors.New("dial tcp: refused"), "connect")
	assert.True(t, IsCode(err, ErrCodeConnection))
	assert.True(t, strings.Contains(err.Error(), "connect"))
}

func TestHealthCheckBeforeConnect(t *testing.T) {
	s, err := NewMinIO(testConfig())
	require.NoError(t, err)
	assert.True(t, IsCode(s.HealthCheck(t.Context()), ErrCodeConnection))
}
