package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/livestock"
)

type clientRepo struct {
	s *Store
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.s.clients[c.ID]; exists {
		return errs.Conflict(errs.EntityClient, "id")
	}
	if err := r.checkCedula(c); err != nil {
		return err
	}
	r.s.clients[c.ID] = c
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[c.ID]; !exists {
		return errs.NotFound(errs.EntityClient)
	}
	if err := r.checkCedula(c); err != nil {
		return err
	}
	r.s.clients[c.ID] = c
	return nil
}

// checkCedula asume el lock tomado. Cédula vacía no participa de la unicidad.
func (r *clientRepo) checkCedula(c clients.Client) error {
	if c.Cedula == "" {
		return nil
	}
	for id, other := range r.s.clients {
		if id != c.ID && other.Cedula == c.Cedula {
			return errs.Conflict(errs.EntityClient, "cedula")
		}
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[id]; !exists {
		return errs.NotFound(errs.EntityClient)
	}
	if n := r.s.countDependents(func(l livestock.Livestock) bool { return l.ClientID == id }); n > 0 {
		return errs.HasDependents(errs.EntityClient, n)
	}
	delete(r.s.clients, id)
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clients.Client{}, errs.NotFound(errs.EntityClient)
	}
	return c, nil
}

func (r *clientRepo) GetByCedula(ctx context.Context, cedula string) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.clients {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return clients.Client{}, errs.NotFound(errs.EntityClient)
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.s.mu.RLock()
	out := make([]clients.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	r.s.mu.RUnlock()

	newestFirst(out,
		func(c clients.Client) time.Time { return c.CreatedAt },
		func(c clients.Client) string { return c.ID })
	return out, nil
}

func (r *clientRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.clients[id]
	return ok, nil
}
