// Package graphql expone los mismos servicios que la API REST como esquema GraphQL.
package graphql

import (
	"context"
	_ "embed"
	"errors"
	"net/http"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/domain/reports"
	"farm-records/internal/platform/logger"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

//go:embed schema.graphql
var schemaSDL string

type Services struct {
	Clients   *clients.Service
	Feeds     *feeds.Service
	Livestock *livestock.Service
	Reports   *reports.Service
}

// Resolver es la raíz de Query y Mutation.
type Resolver struct {
	svc Services
	log logger.Logger
}

func NewSchema(svc Services, log logger.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, &Resolver{svc: svc, log: log}, graphql.MaxDepth(8))
}

func NewHandler(svc Services, log logger.Logger) (http.Handler, error) {
	schema, err := NewSchema(svc, log)
	if err != nil {
		return nil, err
	}
	return &relay.Handler{Schema: schema}, nil
}

// fail deja pasar los errores de dominio y oculta los demás detrás de un mensaje genérico.
func (r *Resolver) fail(err error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != "" {
		return err
	}
	if r.log != nil {
		r.log.Error("graphql resolver failed", map[string]any{"err": err})
	}
	return errors.New("internal error")
}

// optional trata NotFound como ausencia (null) en lugar de error.
func (r *Resolver) optional(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	return r.fail(err)
}

func (r *Resolver) clientsOf(items []clients.Client) []*clientResolver {
	out := make([]*clientResolver, 0, len(items))
	for _, c := range items {
		out = append(out, &clientResolver{root: r, c: c})
	}
	return out
}

func (r *Resolver) feedsOf(items []feeds.Feed) []*feedResolver {
	out := make([]*feedResolver, 0, len(items))
	for _, f := range items {
		out = append(out, &feedResolver{root: r, f: f})
	}
	return out
}

func (r *Resolver) livestockOf(items []livestock.Livestock) []*livestockResolver {
	out := make([]*livestockResolver, 0, len(items))
	for _, l := range items {
		out = append(out, &livestockResolver{root: r, l: l})
	}
	return out
}

func (r *Resolver) listLivestock(ctx context.Context, f livestock.Filter) ([]*livestockResolver, error) {
	items, err := r.svc.Livestock.List(ctx, f)
	if err != nil {
		return nil, r.fail(err)
	}
	return r.livestockOf(items), nil
}
