package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

func TestEnsureSeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds exactly four projects into an empty collection", func(t *testing.T) {
		gw := store.NewMemoryGateway()
		repo := NewRepo(gw)

		require.NoError(t, repo.EnsureSeeded(ctx))

		n, err := gw.Count(ctx, Collection)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		docs, err := gw.FindAll(ctx, Collection)
		require.NoError(t, err)
		for _, d := range docs {
			assert.NotEmpty(t, d["title"])
			assert.NotEmpty(t, d["image"])
			assert.Equal(t, d["created_at"], d["updated_at"])
		}
	})

	t.Run("is a no-op when the collection already has documents", func(t *testing.T) {
		gw := store.NewMemoryGateway()
		_, err := gw.Insert(ctx, Collection, store.Document{"title": "existing"})
		require.NoError(t, err)

		repo := NewRepo(gw)
		require.NoError(t, repo.EnsureSeeded(ctx))

		n, err := gw.Count(ctx, Collection)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("second call after seeding changes nothing", func(t *testing.T) {
		gw := store.NewMemoryGateway()
		repo := NewRepo(gw)

		require.NoError(t, repo.EnsureSeeded(ctx))
		require.NoError(t, repo.EnsureSeeded(ctx))

		n, err := gw.Count(ctx, Collection)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("no-op without a configured store", func(t *testing.T) {
		repo := NewRepo(nil)
		assert.NoError(t, repo.EnsureSeeded(ctx))
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps both timestamps with one instant and echoes the stored doc", func(t *testing.T) {
		gw := store.NewMemoryGateway()
		repo := NewRepo(gw)

		created, err := repo.Create(ctx, store.Document{"title": "New House", "image": "img"})
		require.NoError(t, err)

		assert.NotEmpty(t, created["_id"])
		assert.Equal(t, "New House", created["title"])
		assert.Equal(t, created["created_at"], created["updated_at"])
	})

	t.Run("unconfigured store yields ErrUnavailable", func(t *testing.T) {
		repo := NewRepo(nil)
		_, err := repo.Create(ctx, store.Document{"title": "x"})
		assert.ErrorIs(t, err, store.ErrUnavailable)
	})

	t.Run("lookup miss after insert is an inconsistency", func(t *testing.T) {
		repo := NewRepo(lossyGateway{store.NewMemoryGateway()})
		_, err := repo.Create(ctx, store.Document{"title": "x"})
		assert.ErrorIs(t, err, store.ErrInconsistent)
	})
}

// lossyGateway accepts inserts but never finds them again, simulating a
// store that hands back an identifier it cannot resolve.
type lossyGateway struct {
	store.Gateway
}

func (lossyGateway) FindByID(context.Context, string, any) (store.Document, error) {
	return nil, store.ErrNotFound
}
