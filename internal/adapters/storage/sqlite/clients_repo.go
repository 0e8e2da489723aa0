package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
)

const clientColumns = `id, cedula, given_names, surnames, display_name, phone, email, address, city, created_at, updated_at`

type clientsRepo struct {
	db *sql.DB
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO clients (`+clientColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		c.ID, c.Cedula, c.GivenNames, c.Surnames, c.DisplayName,
		c.Phone, c.Email, c.Address, c.City,
		toUnix(c.CreatedAt), toUnix(c.UpdatedAt),
	)
	if kind, msg := constraint(err); kind == "unique" {
		return uniqueConflict(msg)
	}
	return err
}

func (r *clientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET cedula = ?, given_names = ?, surnames = ?, display_name = ?,
			phone = ?, email = ?, address = ?, city = ?, updated_at = ?
		WHERE id = ?
	`,
		c.Cedula, c.GivenNames, c.Surnames, c.DisplayName,
		c.Phone, c.Email, c.Address, c.City, toUnix(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		if kind, msg := constraint(err); kind == "unique" {
			return uniqueConflict(msg)
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound(errs.EntityClient)
	}
	return nil
}

func (r *clientsRepo) Delete(ctx context.Context, id string) error {
	return deleteReferenced(ctx, r.db, "clients", "client_id", id, errs.EntityClient)
}

func (r *clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	return scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
}

func (r *clientsRepo) GetByCedula(ctx context.Context, cedula string) (clients.Client, error) {
	return scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE cedula = ?`, cedula))
}

func (r *clientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "clients", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (clients.Client, error) {
	var (
		c                clients.Client
		created, updated int64
	)
	if err := row.Scan(
		&c.ID, &c.Cedula, &c.GivenNames, &c.Surnames, &c.DisplayName,
		&c.Phone, &c.Email, &c.Address, &c.City,
		&created, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clients.Client{}, errs.NotFound(errs.EntityClient)
		}
		return clients.Client{}, err
	}
	c.CreatedAt, c.UpdatedAt = fromUnix(created), fromUnix(updated)
	return c, nil
}
