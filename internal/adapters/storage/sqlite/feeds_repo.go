package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
)

const feedColumns = `id, description, food_type, brand, quantity, price, dose, created_at, updated_at`

type feedsRepo struct {
	db *sql.DB
}

func (r *feedsRepo) Create(ctx context.Context, f feeds.Feed) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO feeds (`+feedColumns+`) VALUES (?,?,?,?,?,?,?,?,?)`,
		f.ID, f.Description, f.FoodType, f.Brand, f.Quantity, f.Price, f.Dose,
		toUnix(f.CreatedAt), toUnix(f.UpdatedAt),
	)
	if kind, msg := constraint(err); kind == "unique" {
		return uniqueConflict(msg)
	}
	return err
}

func (r *feedsRepo) Update(ctx context.Context, f feeds.Feed) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE feeds
		SET description = ?, food_type = ?, brand = ?, quantity = ?, price = ?, dose = ?, updated_at = ?
		WHERE id = ?
	`,
		f.Description, f.FoodType, f.Brand, f.Quantity, f.Price, f.Dose, toUnix(f.UpdatedAt),
		f.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound(errs.EntityFeed)
	}
	return nil
}

func (r *feedsRepo) Delete(ctx context.Context, id string) error {
	return deleteReferenced(ctx, r.db, "feeds", "feed_id", id, errs.EntityFeed)
}

func (r *feedsRepo) GetByID(ctx context.Context, id string) (feeds.Feed, error) {
	return scanFeed(r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = ?`, id))
}

func (r *feedsRepo) List(ctx context.Context) ([]feeds.Feed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+feedColumns+` FROM feeds ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

func (r *feedsRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "feeds", id)
}

func scanFeed(row scanner) (feeds.Feed, error) {
	var (
		f                feeds.Feed
		created, updated int64
	)
	if err := row.Scan(
		&f.ID, &f.Description, &f.FoodType, &f.Brand, &f.Quantity, &f.Price, &f.Dose,
		&created, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return feeds.Feed{}, errs.NotFound(errs.EntityFeed)
		}
		return feeds.Feed{}, err
	}
	f.CreatedAt, f.UpdatedAt = fromUnix(created), fromUnix(updated)
	return f, nil
}
