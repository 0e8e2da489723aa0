// Package integrity implementa las reglas de integridad referencial entre
// clientes, alimentación y porcinos: existencia de referencias antes de escribir
// un porcino y bloqueo de borrado mientras existan dependientes.
//
// El guard es una verificación previa. Los adapters de storage aplican las
// mismas restricciones de forma atómica, así que una carrera entre el conteo y
// el borrado termina en el mismo error.
package integrity

import (
	"context"
	"fmt"

	"farm-records/internal/domain/errs"
)

// Existence responde si un registro existe por id.
type Existence interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Dependents cuenta porcinos que referencian a un cliente o alimentación.
type Dependents interface {
	CountByClient(ctx context.Context, clientID string) (int, error)
	CountByFeed(ctx context.Context, feedID string) (int, error)
}

// Recorder recibe cada rechazo (métricas).
type Recorder interface {
	IntegrityRejected(kind string)
}

const (
	RejectClientNotFound      = "client_not_found"
	RejectFeedNotFound        = "feed_not_found"
	RejectClientHasDependents = "client_has_dependents"
	RejectFeedHasDependents   = "feed_has_dependents"
)

type Guard struct {
	clients   Existence
	feeds     Existence
	livestock Dependents
	recorder  Recorder
}

func NewGuard(clients, feeds Existence, livestock Dependents, recorder Recorder) *Guard {
	return &Guard{
		clients:   clients,
		feeds:     feeds,
		livestock: livestock,
		recorder:  recorder,
	}
}

// ValidateLivestockRefs verifica solo las referencias que se están asignando (no nil).
// Cliente se verifica antes que alimentación.
func (g *Guard) ValidateLivestockRefs(ctx context.Context, clientID, feedID *string) error {
	if clientID != nil {
		ok, err := g.clients.Exists(ctx, *clientID)
		if err != nil {
			return fmt.Errorf("check client reference: %w", err)
		}
		if !ok {
			g.reject(RejectClientNotFound)
			return errs.ReferenceNotFound(errs.EntityClient)
		}
	}
	if feedID != nil {
		ok, err := g.feeds.Exists(ctx, *feedID)
		if err != nil {
			return fmt.Errorf("check feed reference: %w", err)
		}
		if !ok {
			g.reject(RejectFeedNotFound)
			return errs.ReferenceNotFound(errs.EntityFeed)
		}
	}
	return nil
}

func (g *Guard) GuardDeleteClient(ctx context.Context, clientID string) error {
	n, err := g.livestock.CountByClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("count livestock by client: %w", err)
	}
	if n > 0 {
		g.reject(RejectClientHasDependents)
		return errs.HasDependents(errs.EntityClient, n)
	}
	return nil
}

func (g *Guard) GuardDeleteFeed(ctx context.Context, feedID string) error {
	n, err := g.livestock.CountByFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("count livestock by feed: %w", err)
	}
	if n > 0 {
		g.reject(RejectFeedHasDependents)
		return errs.HasDependents(errs.EntityFeed, n)
	}
	return nil
}

func (g *Guard) reject(kind string) {
	if g.recorder != nil {
		g.recorder.IntegrityRejected(kind)
	}
}
