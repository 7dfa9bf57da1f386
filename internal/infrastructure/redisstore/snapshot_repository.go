// Package redisstore guarda el snapshot de la plataforma en una sola clave de Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
	"github.com/jhoicas/Reclutamiento-api/pkg/config"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// kv subconjunto del cliente que se usa.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SnapshotRepo snapshot como JSON bajo una clave sin expiración.
type SnapshotRepo struct {
	client kv
	key    string
}

// NewClient cliente Redis desde la configuración.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(client kv, key string) *SnapshotRepo {
	return &SnapshotRepo{client: client, key: key}
}

// Load devuelve nil, nil si la clave no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", r.key, err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", r.key, err)
	}
	return &snap, nil
}

// Save sobrescribe la clave.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("guardar %s: %w", r.key, err)
	}
	return nil
}
