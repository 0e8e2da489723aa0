package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/livestock"

	"github.com/jackc/pgx/v5"
)

const livestockColumns = `id, tag, breed, age_months, weight_kg, client_id, feed_id, created_at, updated_at`

type LivestockRepo struct {
	pool Pool
}

func (r *LivestockRepo) Create(ctx context.Context, l livestock.Livestock) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO livestock (`+livestockColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		l.ID,
		l.Tag,
		int(l.Breed),
		l.AgeMonths,
		l.WeightKg,
		l.ClientID,
		l.FeedID,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return translateWrite(err)
}

func (r *LivestockRepo) Update(ctx context.Context, l livestock.Livestock) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE livestock
		SET
			tag = $2,
			breed = $3,
			age_months = $4,
			weight_kg = $5,
			client_id = $6,
			feed_id = $7,
			updated_at = $8
		WHERE id = $1
	`,
		l.ID,
		l.Tag,
		int(l.Breed),
		l.AgeMonths,
		l.WeightKg,
		l.ClientID,
		l.FeedID,
		l.UpdatedAt,
	)
	if err != nil {
		return translateWrite(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityLivestock)
	}
	return nil
}

func (r *LivestockRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM livestock WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityLivestock)
	}
	return nil
}

func (r *LivestockRepo) GetByID(ctx context.Context, id string) (livestock.Livestock, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+livestockColumns+` FROM livestock WHERE id = $1`, id)
	return scanLivestock(row)
}

func (r *LivestockRepo) GetByTag(ctx context.Context, tag string) (livestock.Livestock, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+livestockColumns+` FROM livestock WHERE tag = $1`, tag)
	return scanLivestock(row)
}

func (r *LivestockRepo) List(ctx context.Context, f livestock.Filter) ([]livestock.Livestock, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ClientID != "" {
		add("client_id = $%d", f.ClientID)
	}
	if f.FeedID != "" {
		add("feed_id = $%d", f.FeedID)
	}
	if f.Breed != 0 {
		add("breed = $%d", int(f.Breed))
	}

	q := `SELECT ` + livestockColumns + ` FROM livestock`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]livestock.Livestock, 0)
	for rows.Next() {
		l, err := scanLivestock(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LivestockRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	return countDependents(ctx, r.pool, "client_id", clientID)
}

func (r *LivestockRepo) CountByFeed(ctx context.Context, feedID string) (int, error) {
	return countDependents(ctx, r.pool, "feed_id", feedID)
}

func scanLivestock(row pgx.Row) (livestock.Livestock, error) {
	var (
		l     livestock.Livestock
		breed int
	)
	if err := row.Scan(
		&l.ID,
		&l.Tag,
		&breed,
		&l.AgeMonths,
		&l.WeightKg,
		&l.ClientID,
		&l.FeedID,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return livestock.Livestock{}, errs.NotFound(errs.EntityLivestock)
		}
		return livestock.Livestock{}, err
	}
	l.Breed = livestock.Breed(breed)
	return l, nil
}
