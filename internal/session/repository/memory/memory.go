package memory

import (
	"context"
	"fmt"

	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session/repository"
)

func (r *Repository) Create(ctx context.Context, s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.items[s.ID]; ok && r.now().Before(e.expiresAt) {
		return repository.ErrExists
	}
	r.items[s.ID] = entry{session: repository.Clone(s), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(id)
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	return repository.Clone(e.session), nil
}

func (r *Repository) Update(ctx context.Context, id string, fn func(s *model.Session) error) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(id)
	if !ok {
		return model.Session{}, repository.ErrNotFound
	}
	s := repository.Clone(e.session)
	if err := fn(&s); err != nil {
		return model.Session{}, err
	}
	r.items[id] = entry{session: s, expiresAt: r.now().Add(r.ttl)}
	return repository.Clone(s), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(id); !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Start schedules the expiry sweep.
func (r *Repository) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.sweep); err != nil {
		return fmt.Errorf("session.repository.memory.Start: invalid sweep spec %q: %w", r.spec, err)
	}
	r.cron.Start()
	return nil
}

// Stop halts the sweep and waits for a running one to finish.
func (r *Repository) Stop() {
	<-r.cron.Stop().Done()
}

// Len is the number of stored entries, expired ones included until swept.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Repository) sweep() {
	r.mu.Lock()
	now := r.now()
	removed := 0
	for id, e := range r.items {
		if !now.Before(e.expiresAt) {
			delete(r.items, id)
			removed++
		}
	}
	r.mu.Unlock()

	if removed > 0 {
		r.l.Debugf(context.Background(), "session.repository.memory.sweep: removed %d expired sessions", removed)
	}
}

// live must be called with mu held.
func (r *Repository) live(id string) (entry, bool) {
	e, ok := r.items[id]
	if !ok || !r.now().Before(e.expiresAt) {
		return entry{}, false
	}
	return e, true
}
