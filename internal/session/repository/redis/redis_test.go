package redis

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session/repository"
	pkgRedis "webaudit-srv/pkg/redis"
)

// Integration tests run only when REDIS_TEST_HOST is set, e.g. REDIS_TEST_HOST=localhost REDIS_TEST_PORT=6379.
func newIntegrationRepo(t *testing.T) repository.Repository {
	t.Helper()
	host := os.Getenv("REDIS_TEST_HOST")
	if host == "" {
		t.Skip("REDIS_TEST_HOST not set")
	}
	port, _ := strconv.Atoi(os.Getenv("REDIS_TEST_PORT"))
	if port == 0 {
		port = 6379
	}
	client, err := pkgRedis.NewRedis(pkgRedis.Config{Host: host, Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return New(client, Options{TTL: time.Minute, KeyPrefix: "webaudit:test:" + uuid.NewString() + ":"})
}

func TestDecode(t *testing.T) {
	s, err := decode([]byte(`{"id":"s1","state":"IDLE","history":null}`))
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	assert.NotNil(t, s.History)

	_, err = decode([]byte(`{`))
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	r := New(nil, Options{}).(*implRepository)
	assert.Equal(t, "webaudit:session:abc", r.key("abc"))
	assert.Equal(t, DefaultTTL, r.ttl)
}

func TestIntegrationCRUD(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, model.Session{ID: "s1", State: model.StateIdle}))
	assert.ErrorIs(t, r.Create(ctx, model.Session{ID: "s1"}), repository.ErrExists)

	s, err := r.Update(ctx, "s1", func(s *model.Session) error {
		s.State = model.StateScanning
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.StateScanning, s.State)

	boom := errors.New("boom")
	_, err = r.Update(ctx, "s1", func(s *model.Session) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, r.Delete(ctx, "s1"))
	_, err = r.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIntegrationConcurrentUpdates(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, model.Session{ID: "s1"}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, "s1", func(s *model.Session) error {
				s.History = append(s.History, model.ChatMessage{Text: "x"})
				return nil
			})
			if err == nil {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, s.History, applied)
}
