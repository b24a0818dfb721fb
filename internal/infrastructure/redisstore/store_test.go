package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/redisstore"
)

func newStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewStore(client, ""), mr
}

func TestStore_LoadClaveAusente_DevuelveSnapshotVacio(t *testing.T) {
	store, _ := newStore(t)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Articles)
	assert.Equal(t, 0, snap.Counters[entity.BonTypeEntree])
}

func TestStore_SaveYLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	snap := entity.NewSnapshot()
	snap.Articles = append(snap.Articles, &entity.Article{ID: 1, Name: "Vis", Reference: "ART-001", Quantity: 12})
	snap.Counters[entity.BonTypeSortie] = 3
	require.NoError(t, store.Save(ctx, snap))
	assert.True(t, mr.Exists(redisstore.DefaultKey))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, 12, got.Articles[0].Quantity)
	assert.Equal(t, 3, got.Counters[entity.BonTypeSortie])
}

func TestStore_LoadDocumentoInvalido(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set(redisstore.DefaultKey, "{pas du json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestStore_LoadServidorCaido(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCorruptSnapshot)
}
