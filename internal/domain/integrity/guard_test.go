package integrity

import (
	"context"
	"errors"
	"testing"

	"farm-records/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type existsSet map[string]bool

func (s existsSet) Exists(ctx context.Context, id string) (bool, error) {
	return s[id], nil
}

type counts struct {
	byClient map[string]int
	byFeed   map[string]int
	err      error
}

func (c counts) CountByClient(ctx context.Context, id string) (int, error) {
	return c.byClient[id], c.err
}

func (c counts) CountByFeed(ctx context.Context, id string) (int, error) {
	return c.byFeed[id], c.err
}

type recorded []string

func (r *recorded) IntegrityRejected(kind string) { *r = append(*r, kind) }

func ptr(s string) *string { return &s }

func TestValidateLivestockRefs(t *testing.T) {
	rec := &recorded{}
	g := NewGuard(existsSet{"c1": true}, existsSet{"f1": true}, counts{}, rec)
	ctx := context.Background()

	require.NoError(t, g.ValidateLivestockRefs(ctx, ptr("c1"), ptr("f1")))
	require.NoError(t, g.ValidateLivestockRefs(ctx, nil, nil))

	err := g.ValidateLivestockRefs(ctx, ptr("c1"), ptr("nope"))
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindReferenceNotFound, e.Kind)
	assert.Equal(t, errs.EntityFeed, e.Entity)

	// Ambos faltan: el cliente se reporta primero.
	e, _ = errs.As(g.ValidateLivestockRefs(ctx, ptr("x"), ptr("y")))
	assert.Equal(t, errs.EntityClient, e.Entity)

	// Solo se verifica lo que se asigna.
	require.NoError(t, g.ValidateLivestockRefs(ctx, nil, ptr("f1")))

	assert.Equal(t, recorded{RejectFeedNotFound, RejectClientNotFound}, *rec)
}

func TestGuardDelete(t *testing.T) {
	rec := &recorded{}
	g := NewGuard(existsSet{}, existsSet{}, counts{
		byClient: map[string]int{"c1": 2},
		byFeed:   map[string]int{"f1": 1},
	}, rec)
	ctx := context.Background()

	err := g.GuardDeleteClient(ctx, "c1")
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindHasDependents, e.Kind)
	assert.Equal(t, 2, e.Count)
	assert.Contains(t, err.Error(), "2 livestock")

	assert.True(t, errors.Is(g.GuardDeleteFeed(ctx, "f1"), errs.ErrHasDependents))
	assert.NoError(t, g.GuardDeleteClient(ctx, "c2"))
	assert.NoError(t, g.GuardDeleteFeed(ctx, "f2"))

	assert.Equal(t, recorded{RejectClientHasDependents, RejectFeedHasDependents}, *rec)
}

func TestGuardDelete_StoreFailureIsNotClassified(t *testing.T) {
	g := NewGuard(existsSet{}, existsSet{}, counts{err: errors.New("db down")}, nil)

	err := g.GuardDeleteClient(context.Background(), "c1")
	require.Error(t, err)
	assert.Equal(t, errs.Kind(""), errs.KindOf(err))
}
