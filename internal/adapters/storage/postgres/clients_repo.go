package postgres

import (
	"context"
	"errors"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"

	"github.com/jackc/pgx/v5"
)

const clientColumns = `id, cedula, given_names, surnames, display_name, phone, email, address, city, created_at, updated_at`

type ClientsRepo struct {
	pool Pool
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.Cedula,
		c.GivenNames,
		c.Surnames,
		c.DisplayName,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return translateWrite(err)
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clients
		SET
			cedula = $2,
			given_names = $3,
			surnames = $4,
			display_name = $5,
			phone = $6,
			email = $7,
			address = $8,
			city = $9,
			updated_at = $10
		WHERE id = $1
	`,
		c.ID,
		c.Cedula,
		c.GivenNames,
		c.Surnames,
		c.DisplayName,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.UpdatedAt,
	)
	if err != nil {
		return translateWrite(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityClient)
	}
	return nil
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			n, cerr := countDependents(ctx, r.pool, "client_id", id)
			if cerr != nil {
				return cerr
			}
			return errs.HasDependents(errs.EntityClient, max(n, 1))
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityClient)
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return scanClient(row)
}

func (r *ClientsRepo) GetByCedula(ctx context.Context, cedula string) (clients.Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE cedula = $1`, cedula)
	return scanClient(row)
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

func (r *ClientsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func scanClient(row pgx.Row) (clients.Client, error) {
	var c clients.Client
	if err := row.Scan(
		&c.ID,
		&c.Cedula,
		&c.GivenNames,
		&c.Surnames,
		&c.DisplayName,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.City,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clients.Client{}, errs.NotFound(errs.EntityClient)
		}
		return clients.Client{}, err
	}
	return c, nil
}
