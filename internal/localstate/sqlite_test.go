package localstate_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/localstate"
)

func newSQLite(t *testing.T) *localstate.SQLiteStore {
	t.Helper()

	store, err := localstate.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store := newSQLite(t)

	t.Run("MissingKey", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "current_member", "ray", 0))
		require.NoError(t, store.Set(ctx, "current_member", "amber", 0))

		got, err := store.Get(ctx, "current_member")
		require.NoError(t, err)
		assert.Equal(t, "amber", got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "x", 0))
		require.NoError(t, store.Delete(ctx, "gone"))
		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("KeysByPrefix", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "snapshot:ray:todos", "[]", 0))
		require.NoError(t, store.Set(ctx, "snapshot:ray:expenses", "[]", 0))
		require.NoError(t, store.Set(ctx, "snapshot:amber:todos", "[]", 0))

		keys, err := store.Keys(ctx, "snapshot:ray:")
		require.NoError(t, err)
		assert.Equal(t, []string{"snapshot:ray:expenses", "snapshot:ray:todos"}, keys)
	})

	t.Run("KeysPrefixIsLiteral", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a%b", "1", 0))
		require.NoError(t, store.Set(ctx, "axb", "1", 0))

		keys, err := store.Keys(ctx, "a%")
		require.NoError(t, err)
		assert.Equal(t, []string{"a%b"}, keys)
	})
}

func TestSQLiteStore_TTL(t *testing.T) {
	ctx := context.Background()
	store := newSQLite(t)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "revoked:abc", "1", time.Hour))

	_, err := store.Get(ctx, "revoked:abc")
	require.NoError(t, err)

	now = now.Add(time.Hour)

	_, err = store.Get(ctx, "revoked:abc")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	keys, err := store.Keys(ctx, "revoked:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := localstate.Open(context.Background(), localstate.Options{Backend: "etcd"})
	assert.Error(t, err)
}
