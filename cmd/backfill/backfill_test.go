package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"farm-records/internal/adapters/storage"
	"farm-records/internal/adapters/storage/memory"
	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLegacy guarda registros tal como los dejaba el esquema heredado,
// sin pasar por los servicios.
func seedLegacy(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Clients().Create(ctx, clients.Client{ID: "c1", Cedula: "1", DisplayName: "Ana Gomez", CreatedAt: now}))
	require.NoError(t, s.Clients().Create(ctx, clients.Client{ID: "c2", Cedula: "2", GivenNames: "Luis", Surnames: "Paz", DisplayName: "Luis Paz", CreatedAt: now}))
	require.NoError(t, s.Feeds().Create(ctx, feeds.Feed{ID: "f1", FoodType: "engorde", CreatedAt: now}))
	require.NoError(t, s.Livestock().Create(ctx, livestock.Livestock{
		ID: "l1", Tag: "p-7", Breed: livestock.BreedYork, WeightKg: 10, ClientID: "c1", FeedID: "f1", CreatedAt: now,
	}))
	return s
}

func execute(t *testing.T, s *memory.Store, args ...string) string {
	t.Helper()
	open := func(context.Context) (storage.Store, func(), error) { return s, func() {}, nil }
	cmd := newRootCmd(open, logger.Nop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	s := seedLegacy(t)

	out := execute(t, s, "run", "--dry-run")
	assert.Contains(t, out, "backfill dry-run")
	assert.Contains(t, out, "clients:   scanned=2 changed=1 conflicts=0")
	assert.Contains(t, out, "feeds:     scanned=1 changed=1 conflicts=0")
	assert.Contains(t, out, "livestock: scanned=1 changed=1 conflicts=0")

	c, err := s.Clients().GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, c.GivenNames)
}

func TestRun_AppliesCanonicalShape(t *testing.T) {
	s := seedLegacy(t)
	ctx := context.Background()

	execute(t, s, "run")

	c, err := s.Clients().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.GivenNames)
	assert.Equal(t, "Gomez", c.Surnames)

	f, err := s.Feeds().GetByID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "Engorde", f.Description)
	assert.Equal(t, "Engorde", f.FoodType)
	assert.Equal(t, feeds.UnspecifiedBrand, f.Brand)

	l, err := s.Livestock().GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "P-7", l.Tag)

	// Segunda corrida: nada que cambiar.
	out := execute(t, s, "run")
	assert.Contains(t, out, "clients:   scanned=2 changed=0")
	assert.Contains(t, out, "feeds:     scanned=1 changed=0")
}

func TestRun_TagConflictIsCountedAndSkipped(t *testing.T) {
	s := seedLegacy(t)
	ctx := context.Background()
	require.NoError(t, s.Livestock().Create(ctx, livestock.Livestock{
		ID: "l2", Tag: "P-7", Breed: livestock.BreedDuroc, WeightKg: 12, ClientID: "c2", FeedID: "f1",
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}))

	out := execute(t, s, "run")
	assert.Contains(t, out, "livestock: scanned=2 changed=0 conflicts=1")
}

func TestVerify_PrintsBothShapes(t *testing.T) {
	s := seedLegacy(t)

	out := execute(t, s, "verify", "--limit", "1")
	assert.Contains(t, out, "CLIENT")
	assert.Contains(t, out, "FEED")
	assert.Contains(t, out, "engorde")
	assert.Contains(t, out, "false")
}
