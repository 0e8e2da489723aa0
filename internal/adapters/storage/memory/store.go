// Package memory es el storage en proceso. Un único lock cubre las tres
// colecciones, así que unicidad e integridad referencial se verifican y
// aplican en el mismo paso.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
)

type Store struct {
	mu        sync.RWMutex
	clients   map[string]clients.Client
	feeds     map[string]feeds.Feed
	livestock map[string]livestock.Livestock
}

func New() *Store {
	return &Store{
		clients:   make(map[string]clients.Client),
		feeds:     make(map[string]feeds.Feed),
		livestock: make(map[string]livestock.Livestock),
	}
}

func (s *Store) Clients() clients.Repository     { return &clientRepo{s: s} }
func (s *Store) Feeds() feeds.Repository         { return &feedRepo{s: s} }
func (s *Store) Livestock() livestock.Repository { return &livestockRepo{s: s} }

// Ping existe para el health check; el store en memoria siempre está disponible.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

// countDependents asume el lock tomado.
func (s *Store) countDependents(match func(livestock.Livestock) bool) int {
	n := 0
	for _, l := range s.livestock {
		if match(l) {
			n++
		}
	}
	return n
}

// newestFirst ordena por created_at desc; el id desempata para que el orden sea estable.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) > id(items[j])
	})
}
