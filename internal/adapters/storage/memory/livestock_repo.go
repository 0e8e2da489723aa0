package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/livestock"
)

type livestockRepo struct {
	s *Store
}

func (r *livestockRepo) Create(ctx context.Context, l livestock.Livestock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("livestock id required")
	}
	if _, exists := r.s.livestock[l.ID]; exists {
		return errs.Conflict(errs.EntityLivestock, "id")
	}
	if err := r.checkConstraints(l); err != nil {
		return err
	}
	r.s.livestock[l.ID] = l
	return nil
}

func (r *livestockRepo) Update(ctx context.Context, l livestock.Livestock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.livestock[l.ID]; !exists {
		return errs.NotFound(errs.EntityLivestock)
	}
	if err := r.checkConstraints(l); err != nil {
		return err
	}
	r.s.livestock[l.ID] = l
	return nil
}

// checkConstraints asume el lock tomado: tag único y referencias existentes.
func (r *livestockRepo) checkConstraints(l livestock.Livestock) error {
	for id, other := range r.s.livestock {
		if id != l.ID && other.Tag == l.Tag {
			return errs.Conflict(errs.EntityLivestock, "tag")
		}
	}
	if _, ok := r.s.clients[l.ClientID]; !ok {
		return errs.ReferenceNotFound(errs.EntityClient)
	}
	if _, ok := r.s.feeds[l.FeedID]; !ok {
		return errs.ReferenceNotFound(errs.EntityFeed)
	}
	return nil
}

func (r *livestockRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.livestock[id]; !exists {
		return errs.NotFound(errs.EntityLivestock)
	}
	delete(r.s.livestock, id)
	return nil
}

func (r *livestockRepo) GetByID(ctx context.Context, id string) (livestock.Livestock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.livestock[id]
	if !ok {
		return livestock.Livestock{}, errs.NotFound(errs.EntityLivestock)
	}
	return l, nil
}

func (r *livestockRepo) GetByTag(ctx context.Context, tag string) (livestock.Livestock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, l := range r.s.livestock {
		if l.Tag == tag {
			return l, nil
		}
	}
	return livestock.Livestock{}, errs.NotFound(errs.EntityLivestock)
}

func (r *livestockRepo) List(ctx context.Context, f livestock.Filter) ([]livestock.Livestock, error) {
	r.s.mu.RLock()
	out := make([]livestock.Livestock, 0)
	for _, l := range r.s.livestock {
		if f.Match(l) {
			out = append(out, l)
		}
	}
	r.s.mu.RUnlock()

	newestFirst(out,
		func(l livestock.Livestock) time.Time { return l.CreatedAt },
		func(l livestock.Livestock) string { return l.ID })
	return out, nil
}

func (r *livestockRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.countDependents(func(l livestock.Livestock) bool { return l.ClientID == clientID }), nil
}

func (r *livestockRepo) CountByFeed(ctx context.Context, feedID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.countDependents(func(l livestock.Livestock) bool { return l.FeedID == feedID }), nil
}
