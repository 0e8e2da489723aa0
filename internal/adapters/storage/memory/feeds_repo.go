package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
)

type feedRepo struct {
	s *Store
}

func (r *feedRepo) Create(ctx context.Context, f feeds.Feed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("feed id required")
	}
	if _, exists := r.s.feeds[f.ID]; exists {
		return errs.Conflict(errs.EntityFeed, "id")
	}
	r.s.feeds[f.ID] = f
	return nil
}

func (r *feedRepo) Update(ctx context.Context, f feeds.Feed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.feeds[f.ID]; !exists {
		return errs.NotFound(errs.EntityFeed)
	}
	r.s.feeds[f.ID] = f
	return nil
}

func (r *feedRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.feeds[id]; !exists {
		return errs.NotFound(errs.EntityFeed)
	}
	if n := r.s.countDependents(func(l livestock.Livestock) bool { return l.FeedID == id }); n > 0 {
		return errs.HasDependents(errs.EntityFeed, n)
	}
	delete(r.s.feeds, id)
	return nil
}

func (r *feedRepo) GetByID(ctx context.Context, id string) (feeds.Feed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.feeds[id]
	if !ok {
		return feeds.Feed{}, errs.NotFound(errs.EntityFeed)
	}
	return f, nil
}

func (r *feedRepo) List(ctx context.Context) ([]feeds.Feed, error) {
	r.s.mu.RLock()
	out := make([]feeds.Feed, 0, len(r.s.feeds))
	for _, f := range r.s.feeds {
		out = append(out, f)
	}
	r.s.mu.RUnlock()

	newestFirst(out,
		func(f feeds.Feed) time.Time { return f.CreatedAt },
		func(f feeds.Feed) string { return f.ID })
	return out, nil
}

func (r *feedRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.feeds[id]
	return ok, nil
}
