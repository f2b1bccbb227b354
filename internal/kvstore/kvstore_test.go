package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// each implementation must satisfy the same contract
func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestStore_AbsentKeyReturnsNil(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "k", []byte("v1")))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v1"), v)

			require.NoError(t, s.Set(ctx, "k", []byte("v2")))
			v, err = s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), v)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "k", []byte("v")))
			require.NoError(t, s.Delete(ctx, "k"))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Nil(t, v)

			// deleting an absent key is not an error
			require.NoError(t, s.Delete(ctx, "k"))
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", []byte("survives")))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("survives"), v)
}
