package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/jsonfile"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/memory"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/redisstore"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/snapshot"
	"github.com/Soubahou/gestion-stock-atlas/pkg/config"
)

func TestOpenStore_Drivers(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cases := []struct {
		name  string
		cfg   config.Config
		check func(t *testing.T, store any)
	}{
		{"file", config.Config{Store: config.StoreConfig{Driver: config.StoreFile, FilePath: filepath.Join(t.TempDir(), "db.json")}},
			func(t *testing.T, s any) { assert.IsType(t, &jsonfile.Store{}, s) }},
		{"memory", config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}},
			func(t *testing.T, s any) { assert.IsType(t, &memory.Store{}, s) }},
		{"redis", config.Config{Store: config.StoreConfig{Driver: config.StoreRedis}, Redis: config.RedisConfig{Addr: mr.Addr()}},
			func(t *testing.T, s any) { assert.IsType(t, &redisstore.Store{}, s) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, closeFn, err := snapshot.OpenStore(ctx, &tc.cfg, zerolog.Nop())
			require.NoError(t, err)
			defer closeFn()
			tc.check(t, store)
		})
	}
}

func TestOpenStore_DriverDesconocido(t *testing.T) {
	_, _, err := snapshot.OpenStore(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}}, zerolog.Nop())
	assert.Error(t, err)
}

func TestOpenStore_RedisCaido(t *testing.T) {
	cfg := config.Config{Store: config.StoreConfig{Driver: config.StoreRedis}, Redis: config.RedisConfig{Addr: "127.0.0.1:1"}}
	_, _, err := snapshot.OpenStore(context.Background(), &cfg, zerolog.Nop())
	assert.Error(t, err)
}
