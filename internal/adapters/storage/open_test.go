package storage

import (
	"context"
	"path/filepath"
	"testing"

	"farm-records/internal/adapters/storage/memory"
	"farm-records/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.Store{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.db")
	s, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer closeFn()
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.StoreConfig{Driver: "mongo"})
	assert.ErrorContains(t, err, "unknown store driver")
}
