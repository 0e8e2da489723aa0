package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/livestock"
)

const livestockColumns = `id, tag, breed, age_months, weight_kg, client_id, feed_id, created_at, updated_at`

type livestockRepo struct {
	db *sql.DB
}

func (r *livestockRepo) Create(ctx context.Context, l livestock.Livestock) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO livestock (`+livestockColumns+`) VALUES (?,?,?,?,?,?,?,?,?)`,
		l.ID, l.Tag, int(l.Breed), l.AgeMonths, l.WeightKg, l.ClientID, l.FeedID,
		toUnix(l.CreatedAt), toUnix(l.UpdatedAt),
	)
	return r.translate(ctx, err, l)
}

func (r *livestockRepo) Update(ctx context.Context, l livestock.Livestock) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE livestock
		SET tag = ?, breed = ?, age_months = ?, weight_kg = ?, client_id = ?, feed_id = ?, updated_at = ?
		WHERE id = ?
	`,
		l.Tag, int(l.Breed), l.AgeMonths, l.WeightKg, l.ClientID, l.FeedID, toUnix(l.UpdatedAt),
		l.ID,
	)
	if err != nil {
		return r.translate(ctx, err, l)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound(errs.EntityLivestock)
	}
	return nil
}

// translate resuelve qué referencia falló: SQLite no nombra la FK en el error.
func (r *livestockRepo) translate(ctx context.Context, err error, l livestock.Livestock) error {
	kind, msg := constraint(err)
	switch kind {
	case "unique":
		return uniqueConflict(msg)
	case "foreign_key":
		ok, cerr := exists(ctx, r.db, "clients", l.ClientID)
		if cerr != nil {
			return cerr
		}
		if !ok {
			return errs.ReferenceNotFound(errs.EntityClient)
		}
		return errs.ReferenceNotFound(errs.EntityFeed)
	}
	return err
}

func (r *livestockRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM livestock WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound(errs.EntityLivestock)
	}
	return nil
}

func (r *livestockRepo) GetByID(ctx context.Context, id string) (livestock.Livestock, error) {
	return scanLivestock(r.db.QueryRowContext(ctx, `SELECT `+livestockColumns+` FROM livestock WHERE id = ?`, id))
}

func (r *livestockRepo) GetByTag(ctx context.Context, tag string) (livestock.Livestock, error) {
	return scanLivestock(r.db.QueryRowContext(ctx, `SELECT `+livestockColumns+` FROM livestock WHERE tag = ?`, tag))
}

func (r *livestockRepo) List(ctx context.Context, f livestock.Filter) ([]livestock.Livestock, error) {
	var (
		conds []string
		args  []any
	)
	if f.ClientID != "" {
		conds, args = append(conds, "client_id = ?"), append(args, f.ClientID)
	}
	if f.FeedID != "" {
		conds, args = append(conds, "feed_id = ?"), append(args, f.FeedID)
	}
	if f.Breed != 0 {
		conds, args = append(conds, "breed = ?"), append(args, int(f.Breed))
	}

	q := `SELECT ` + livestockColumns + ` FROM livestock`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

func (r *livestockRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	return countDependents(ctx, r.db, "client_id", clientID)
}

func (r *livestockRepo) CountByFeed(ctx context.Context, feedID string) (int, error) {
	return countDependents(ctx, r.db, "feed_id", feedID)
}

func scanLivestock(row scanner) (livestock.Livestock, error) {
	var (
		l                livestock.Livestock
		breed            int
		created, updated int64
	)
	if err := row.Scan(
		&l.ID, &l.Tag, &breed, &l.AgeMonths, &l.WeightKg, &l.ClientID, &l.FeedID,
		&created, &updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return livestock.Livestock{}, errs.NotFound(errs.EntityLivestock)
		}
		return livestock.Livestock{}, err
	}
	l.Breed = livestock.Breed(breed)
	l.CreatedAt, l.UpdatedAt = fromUnix(created), fromUnix(updated)
	return l, nil
}
