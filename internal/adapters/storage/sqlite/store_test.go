package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Clients().Create(ctx, clients.Client{ID: "c1", Cedula: "0102", DisplayName: "Ana Lopez", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, s.Feeds().Create(ctx, feeds.Feed{ID: "f1", Description: "Maíz", FoodType: "Maíz", CreatedAt: now, UpdatedAt: now}))
}

func pig(id, tag string, created time.Time) livestock.Livestock {
	return livestock.Livestock{
		ID: id, Tag: tag, Breed: livestock.BreedHampshire, AgeMonths: 4, WeightKg: 35.5,
		ClientID: "c1", FeedID: "f1", CreatedAt: created, UpdatedAt: created,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)
	ctx := context.Background()

	c, err := s.Clients().GetByCedula(ctx, "0102")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.True(t, c.CreatedAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Livestock().Create(ctx, pig("p1", "T1", created)))

	l, err := s.Livestock().GetByTag(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, livestock.BreedHampshire, l.Breed)
	assert.Equal(t, 35.5, l.WeightKg)
	assert.True(t, l.CreatedAt.Equal(created))
}

func TestStore_UniqueConstraints(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)
	ctx := context.Background()

	err := s.Clients().Create(ctx, clients.Client{ID: "c2", Cedula: "0102"})
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindConflict, e.Kind)
	assert.Equal(t, "cedula", e.Field)

	// Las cédulas vacías no chocan (índice parcial).
	require.NoError(t, s.Clients().Create(ctx, clients.Client{ID: "c3"}))
	require.NoError(t, s.Clients().Create(ctx, clients.Client{ID: "c4"}))

	now := time.Now()
	require.NoError(t, s.Livestock().Create(ctx, pig("p1", "T1", now)))
	err = s.Livestock().Create(ctx, pig("p2", "T1", now))
	e, ok = errs.As(err)
	require.True(t, ok)
	assert.Equal(t, "tag", e.Field)
}

func TestStore_ForeignKeys(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)
	ctx := context.Background()
	now := time.Now()

	bad := pig("p1", "T1", now)
	bad.ClientID = "ghost"
	e, ok := errs.As(s.Livestock().Create(ctx, bad))
	require.True(t, ok)
	assert.Equal(t, errs.KindReferenceNotFound, e.Kind)
	assert.Equal(t, errs.EntityClient, e.Entity)

	bad = pig("p1", "T1", now)
	bad.FeedID = "ghost"
	e, _ = errs.As(s.Livestock().Create(ctx, bad))
	assert.Equal(t, errs.EntityFeed, e.Entity)

	require.NoError(t, s.Livestock().Create(ctx, pig("p1", "T1", now)))
	require.NoError(t, s.Livestock().Create(ctx, pig("p2", "T2", now)))

	e, ok = errs.As(s.Clients().Delete(ctx, "c1"))
	require.True(t, ok)
	assert.Equal(t, errs.KindHasDependents, e.Kind)
	assert.Equal(t, 2, e.Count)
	assert.True(t, errors.Is(s.Feeds().Delete(ctx, "f1"), errs.ErrHasDependents))

	require.NoError(t, s.Livestock().Delete(ctx, "p1"))
	require.NoError(t, s.Livestock().Delete(ctx, "p2"))
	require.NoError(t, s.Clients().Delete(ctx, "c1"))
	assert.True(t, errors.Is(s.Clients().Delete(ctx, "c1"), errs.ErrNotFound))
}

func TestStore_ListOrderAndFilter(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, tag := range []string{"A", "B", "C"} {
		l := pig("p"+tag, tag, base.Add(time.Duration(i)*time.Hour))
		if tag == "B" {
			l.Breed = livestock.BreedYork
		}
		require.NoError(t, s.Livestock().Create(ctx, l))
	}

	all, err := s.Livestock().List(ctx, livestock.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Tag)
	assert.Equal(t, "A", all[2].Tag)

	york, err := s.Livestock().List(ctx, livestock.Filter{ClientID: "c1", Breed: livestock.BreedYork})
	require.NoError(t, err)
	require.Len(t, york, 1)
	assert.Equal(t, "B", york[0].Tag)

	n, err := s.Livestock().CountByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "farm.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())

	// Reabrir aplica el esquema de nuevo sin error.
	s, err = Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
