package snapshot

import (
	"context"
	"fmt"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/jsonfile"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/memory"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/postgres"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/redisstore"
	"github.com/Soubahou/gestion-stock-atlas/pkg/config"
	"github.com/rs/zerolog"
)

// OpenStore construye el almacén configurado en STORE_DRIVER. closeFn libera conexiones.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store repository.SnapshotStore, closeFn func(), err error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), noop, nil

	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Str("key", cfg.Redis.Key).Msg("almacén redis")
		return redisstore.NewStore(client, cfg.Redis.Key), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("almacén postgres")
		return postgres.NewSnapshotRepository(pool), pool.Close, nil

	case config.StoreFile, "":
		log.Info().Str("path", cfg.Store.FilePath).Msg("almacén en archivo JSON")
		return jsonfile.NewStore(cfg.Store.FilePath), noop, nil
	}
	return nil, nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
