// Package storage elige el adaptador de persistencia del snapshot según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Reclutamiento-api/pkg/config"
)

// Open abre el repositorio del driver configurado. closeFn libera la conexión y
// siempre es distinto de nil.
func Open(ctx context.Context, cfg *config.Config) (repo repository.SnapshotRepository, closeFn func(), err error) {
	closeFn = func() {}
	switch cfg.Storage.Driver {
	case config.StorageFile:
		return filestore.NewSnapshotRepository(cfg.Storage.FilePath), closeFn, nil
	case config.StorageMemory:
		return memory.NewSnapshotRepository(), closeFn, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, closeFn, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgres.NewSnapshotRepository(pool), pool.Close, nil
	case config.StorageRedis:
		client := redisstore.NewClient(cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, closeFn, fmt.Errorf("conexión a Redis: %w", err)
		}
		return redisstore.NewSnapshotRepository(client, cfg.Redis.Key), func() { _ = client.Close() }, nil
	default:
		return nil, closeFn, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
	}
}
