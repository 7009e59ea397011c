package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webaudit-srv/pkg/log"
)

func newTestDiscord(t *testing.T, handler http.HandlerFunc) IDiscord {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RetryCount = 0
	cfg.AlertsPerMin = 0
	d, err := NewWithConfig(log.NewNop(), &DiscordWebhook{ID: "123", Token: "abc"}, cfg)
	require.NoError(t, err)
	return d
}

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(log.NewNop(), nil)
	assert.Error(t, err)

	_, err = NewDiscordWebhook("", "token")
	assert.Error(t, err)
}

func TestSendError(t *testing.T) {
	var got WebhookPayload
	var path string
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := d.SendError(context.Background(), "Panic", strings.Repeat("x", 5000), errors.New("boom"))
	require.NoError(t, err)

	assert.Equal(t, "/123/abc", path)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, colorError, got.Embeds[0].Color)
	assert.Equal(t, "Panic", got.Embeds[0].Title)
	assert.Len(t, []rune(got.Embeds[0].Description), maxDescriptionLen)
	assert.Equal(t, []EmbedField{{Name: "Error", Value: "boom"}}, got.Embeds[0].Fields)
	assert.Equal(t, "webaudit-srv", got.Username)
}

func TestSendFailureStatus(t *testing.T) {
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	assert.Error(t, d.SendInfo(context.Background(), "hello", ""))
}

func TestClosed(t *testing.T) {
	calls := 0
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, d.Close())
	assert.Error(t, d.SendInfo(context.Background(), "t", "d"))
	assert.Zero(t, calls)
}

func TestThrottle(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RetryCount = 0
	cfg.AlertsPerMin = 1
	cfg.AlertBurstMax = 2
	d, err := NewWithConfig(log.NewNop(), &DiscordWebhook{ID: "123", Token: "abc"}, cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, d.SendError(ctx, "a", "", nil))
	require.NoError(t, d.SendError(ctx, "b", "", nil))
	assert.ErrorIs(t, d.SendError(ctx, "c", "", nil), ErrThrottled)
	assert.Equal(t, int32(2), calls.Load())
}
