package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reclutamiento-api/pkg/config"
)

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	repo, closeFn, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.SnapshotRepo{}, repo)

	path := filepath.Join(t.TempDir(), "estado.json")
	cfg = &config.Config{Storage: config.StorageConfig{Driver: config.StorageFile, FilePath: path}}
	repo, closeFn, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &filestore.SnapshotRepo{}, repo)

	require.NoError(t, repo.Save(ctx, &entity.Snapshot{Admins: []entity.Admin{{ID: "adm-1"}}}))
	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Admins, 1)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, closeFn, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "s3"}})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
