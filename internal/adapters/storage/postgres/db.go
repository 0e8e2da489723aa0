// Package postgres implementa los repositorios sobre un pool pgx. Las
// restricciones de unicidad y las foreign keys (ON DELETE RESTRICT) viven en
// el esquema; este paquete traduce sus violaciones a errores de dominio.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Pool es el subconjunto de *pgxpool.Pool que usan los repos (pgxmock lo implementa).
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Open crea el pool y verifica la conexión.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	// defaults razonables (ajustable luego)
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type Store struct {
	pool Pool
}

func New(pool Pool) *Store {
	return &Store{pool: pool}
}

// Migrate aplica el esquema embebido. Es idempotente.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Clients() clients.Repository     { return &ClientsRepo{pool: s.pool} }
func (s *Store) Feeds() feeds.Repository         { return &FeedsRepo{pool: s.pool} }
func (s *Store) Livestock() livestock.Repository { return &LivestockRepo{pool: s.pool} }

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var uniqueFields = map[string]struct {
	entity errs.Entity
	field  string
}{
	"clients_cedula_key": {errs.EntityClient, "cedula"},
	"livestock_tag_key":  {errs.EntityLivestock, "tag"},
	"clients_pkey":       {errs.EntityClient, "id"},
	"feeds_pkey":         {errs.EntityFeed, "id"},
	"livestock_pkey":     {errs.EntityLivestock, "id"},
}

var foreignKeys = map[string]errs.Entity{
	"livestock_client_id_fkey": errs.EntityClient,
	"livestock_feed_id_fkey":   errs.EntityFeed,
}

// translateWrite convierte violaciones de unicidad o FK en un insert/update.
func translateWrite(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if u, ok := uniqueFields[pgErr.ConstraintName]; ok {
			return errs.Conflict(u.entity, u.field)
		}
	case codeForeignKeyViolation:
		if entity, ok := foreignKeys[pgErr.ConstraintName]; ok {
			return errs.ReferenceNotFound(entity)
		}
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// countDependents se usa cuando un DELETE choca con la FK, para reportar cuántos porcinos bloquean.
func countDependents(ctx context.Context, pool Pool, column, id string) (int, error) {
	var n int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM livestock WHERE `+column+` = $1`, id).Scan(&n)
	return n, err
}
