package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session/repository"
	"webaudit-srv/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRepo(ttl time.Duration) (*Repository, *clock) {
	c := &clock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	r := New(log.NewNop(), Options{TTL: ttl})
	r.now = c.Now
	return r, c
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour)

	require.NoError(t, r.Create(ctx, model.Session{ID: "s1", State: model.StateIdle, History: []model.ChatMessage{}}))
	assert.ErrorIs(t, r.Create(ctx, model.Session{ID: "s1"}), repository.ErrExists)

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, s.State)
	assert.NotNil(t, s.History)

	updated, err := r.Update(ctx, "s1", func(s *model.Session) error {
		s.State = model.StateScanning
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.StateScanning, updated.State)

	require.NoError(t, r.Delete(ctx, "s1"))
	_, err = r.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "s1"), repository.ErrNotFound)
}

func TestUpdateAbortKeepsState(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour)
	require.NoError(t, r.Create(ctx, model.Session{ID: "s1", State: model.StateIdle}))

	boom := errors.New("boom")
	_, err := r.Update(ctx, "s1", func(s *model.Session) error {
		s.State = model.StateError
		return boom
	})
	assert.ErrorIs(t, err, boom)

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, s.State)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour)
	require.NoError(t, r.Create(ctx, model.Session{ID: "s1", History: []model.ChatMessage{{Text: "a"}}}))

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	s.History[0].Text = "mutated"

	again, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "a", again.History[0].Text)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	r, c := newTestRepo(time.Minute)
	require.NoError(t, r.Create(ctx, model.Session{ID: "s1"}))

	c.Advance(30 * time.Second)
	_, err := r.Update(ctx, "s1", func(s *model.Session) error { return nil })
	require.NoError(t, err)

	c.Advance(45 * time.Second)
	_, err = r.Get(ctx, "s1")
	require.NoError(t, err, "update refreshes the ttl")

	c.Advance(time.Minute)
	_, err = r.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 1, r.Len())

	r.sweep()
	assert.Equal(t, 0, r.Len())
}

func TestStartStop(t *testing.T) {
	r := New(log.NewNop(), Options{SweepSpec: "@every 1h"})
	require.NoError(t, r.Start())
	r.Stop()

	bad := New(log.NewNop(), Options{SweepSpec: "not a spec"})
	assert.Error(t, bad.Start())
}

func TestConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepo(time.Hour)
	require.NoError(t, r.Create(ctx, model.Session{ID: "s1"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Update(ctx, "s1", func(s *model.Session) error {
				s.History = append(s.History, model.ChatMessage{Text: "x"})
				return nil
			})
		}()
	}
	wg.Wait()

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, s.History, 50)
}
