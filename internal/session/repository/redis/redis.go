package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session/repository"
	pkgRedis "webaudit-srv/pkg/redis"
)

func (r *implRepository) key(id string) string {
	return r.prefix + id
}

func (r *implRepository) Create(ctx context.Context, s model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session.repository.redis.Create: encode: %w", err)
	}
	ok, err := r.redis.SetNX(ctx, r.key(s.ID), data, r.ttl)
	if err != nil {
		return fmt.Errorf("session.repository.redis.Create: %w", err)
	}
	if !ok {
		return repository.ErrExists
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Session, error) {
	raw, err := r.redis.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return model.Session{}, repository.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("session.repository.redis.Get: %w", err)
	}
	return decode([]byte(raw))
}

// Update runs fn inside WATCH/MULTI and retries when another writer got there first.
func (r *implRepository) Update(ctx context.Context, id string, fn func(s *model.Session) error) (model.Session, error) {
	key := r.key(id)
	var out model.Session

	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return repository.ErrNotFound
			}
			return err
		}
		s, err := decode(raw)
		if err != nil {
			return err
		}
		if err := fn(&s); err != nil {
			return err
		}
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		out = s
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.redis.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, pkgRedis.ErrTxFailed) {
			continue
		}
		return model.Session{}, err
	}
	return model.Session{}, repository.ErrConflict
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	n, err := r.redis.Delete(ctx, r.key(id))
	if err != nil {
		return fmt.Errorf("session.repository.redis.Delete: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func decode(raw []byte) (model.Session, error) {
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Session{}, fmt.Errorf("session.repository.redis: decode: %w", err)
	}
	if s.History == nil {
		s.History = []model.ChatMessage{}
	}
	return s, nil
}
