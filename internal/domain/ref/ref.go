// Package ref modela una referencia entre entidades como unión explícita:
// o solo se conoce el id (Unresolved) o además se tiene la entidad (Resolved).
package ref

import (
	"context"
	"errors"
	"strings"

	"farm-records/internal/domain/errs"
)

type Ref[T any] struct {
	id     string
	entity *T
}

func Unresolved[T any](id string) Ref[T] {
	return Ref[T]{id: strings.TrimSpace(id)}
}

func Resolved[T any](id string, entity T) Ref[T] {
	return Ref[T]{id: strings.TrimSpace(id), entity: &entity}
}

func (r Ref[T]) ID() string { return r.id }

func (r Ref[T]) IsResolved() bool { return r.entity != nil }

// Entity devuelve la entidad si la referencia está resuelta.
func (r Ref[T]) Entity() (T, bool) {
	if r.entity == nil {
		var zero T
		return zero, false
	}
	return *r.entity, true
}

// Loader busca una entidad por id.
type Loader[T any] func(ctx context.Context, id string) (T, error)

// Resolve resuelve la referencia usando load. Una referencia colgante (NotFound)
// devuelve (ref sin resolver, false, nil): el caller decide si eso es un error.
func Resolve[T any](ctx context.Context, r Ref[T], load Loader[T]) (Ref[T], bool, error) {
	if r.entity != nil {
		return r, true, nil
	}
	if r.id == "" {
		return r, false, nil
	}
	e, err := load(ctx, r.id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return r, false, nil
		}
		return r, false, err
	}
	return Resolved(r.id, e), true, nil
}
