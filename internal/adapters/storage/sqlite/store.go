// Package sqlite guarda los registros en un archivo SQLite (driver modernc,
// sin cgo). Pensado para instalaciones de una sola máquina.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schema string

type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica el esquema. ":memory:" sirve para tests.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "farm-records.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Una sola conexión: SQLite serializa escrituras y ":memory:" es por conexión.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error                   { return s.db.Close() }
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Clients() clients.Repository     { return &clientsRepo{db: s.db} }
func (s *Store) Feeds() feeds.Repository         { return &feedsRepo{db: s.db} }
func (s *Store) Livestock() livestock.Repository { return &livestockRepo{db: s.db} }

// constraint clasifica un error del driver: "unique", "foreign_key" o "".
func constraint(err error) (kind, msg string) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return "", ""
	}
	msg = se.Error()
	switch {
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		strings.Contains(msg, "UNIQUE constraint failed"):
		return "unique", msg
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return "foreign_key", msg
	}
	return "", msg
}

func uniqueConflict(msg string) error {
	switch {
	case strings.Contains(msg, "clients.cedula"):
		return errs.Conflict(errs.EntityClient, "cedula")
	case strings.Contains(msg, "livestock.tag"):
		return errs.Conflict(errs.EntityLivestock, "tag")
	case strings.Contains(msg, "clients.id"):
		return errs.Conflict(errs.EntityClient, "id")
	case strings.Contains(msg, "feeds.id"):
		return errs.Conflict(errs.EntityFeed, "id")
	default:
		return errs.Conflict(errs.EntityLivestock, "id")
	}
}

func exists(ctx context.Context, db *sql.DB, table, id string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM `+table+` WHERE id = ?`, id).Scan(&n)
	return n > 0, err
}

func countDependents(ctx context.Context, db *sql.DB, column, id string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM livestock WHERE `+column+` = ?`, id).Scan(&n)
	return n, err
}

// deleteReferenced borra de table y traduce la FK a HasDependents con el conteo real.
func deleteReferenced(ctx context.Context, db *sql.DB, table, column, id string, entity errs.Entity) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		if kind, _ := constraint(err); kind == "foreign_key" {
			n, cerr := countDependents(ctx, db, column, id)
			if cerr != nil {
				return cerr
			}
			return errs.HasDependents(entity, max(n, 1))
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound(entity)
	}
	return nil
}

func toUnix(t time.Time) int64 { return t.UnixNano() }

func fromUnix(n int64) time.Time { return time.Unix(0, n).UTC() }
