package postgres

import (
	"context"
	"errors"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"

	"github.com/jackc/pgx/v5"
)

const feedColumns = `id, description, food_type, brand, quantity, price, dose, created_at, updated_at`

type FeedsRepo struct {
	pool Pool
}

func (r *FeedsRepo) Create(ctx context.Context, f feeds.Feed) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feeds (`+feedColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		f.ID,
		f.Description,
		f.FoodType,
		f.Brand,
		f.Quantity,
		f.Price,
		f.Dose,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return translateWrite(err)
}

func (r *FeedsRepo) Update(ctx context.Context, f feeds.Feed) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE feeds
		SET
			description = $2,
			food_type = $3,
			brand = $4,
			quantity = $5,
			price = $6,
			dose = $7,
			updated_at = $8
		WHERE id = $1
	`,
		f.ID,
		f.Description,
		f.FoodType,
		f.Brand,
		f.Quantity,
		f.Price,
		f.Dose,
		f.UpdatedAt,
	)
	if err != nil {
		return translateWrite(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityFeed)
	}
	return nil
}

func (r *FeedsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feeds WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			n, cerr := countDependents(ctx, r.pool, "feed_id", id)
			if cerr != nil {
				return cerr
			}
			return errs.HasDependents(errs.EntityFeed, max(n, 1))
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityFeed)
	}
	return nil
}

func (r *FeedsRepo) GetByID(ctx context.Context, id string) (feeds.Feed, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = $1`, id)
	return scanFeed(row)
}

func (r *FeedsRepo) List(ctx context.Context) ([]feeds.Feed, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+feedColumns+` FROM feeds ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feeds.Feed, 0)
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FeedsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM feeds WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func scanFeed(row pgx.Row) (feeds.Feed, error) {
	var f feeds.Feed
	if err := row.Scan(
		&f.ID,
		&f.Description,
		&f.FoodType,
		&f.Brand,
		&f.Quantity,
		&f.Price,
		&f.Dose,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return feeds.Feed{}, errs.NotFound(errs.EntityFeed)
		}
		return feeds.Feed{}, err
	}
	return f, nil
}
