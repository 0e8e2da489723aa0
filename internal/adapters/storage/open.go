// Package storage elige el adapter según la configuración.
package storage

import (
	"context"
	"fmt"

	"farm-records/internal/adapters/storage/memory"
	"farm-records/internal/adapters/storage/postgres"
	"farm-records/internal/adapters/storage/sqlite"
	"farm-records/internal/config"
	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
)

type Store interface {
	Clients() clients.Repository
	Feeds() feeds.Repository
	Livestock() livestock.Repository
	Ping(ctx context.Context) error
}

// Open abre el store configurado. closeFn libera conexiones y nunca es nil.
func Open(ctx context.Context, cfg config.StoreConfig) (store Store, closeFn func(), err error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.New(), func() {}, nil

	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		s := postgres.New(pool)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		return s, pool.Close, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return s, func() { _ = s.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
