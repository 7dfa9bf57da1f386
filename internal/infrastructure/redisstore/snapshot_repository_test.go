package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// fakeKV mapa en memoria con la forma de respuesta del cliente.
type fakeKV struct {
	data   map[string]string
	setErr error
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestSnapshotRepo_ClaveVacia(t *testing.T) {
	repo := NewSnapshotRepository(&fakeKV{data: map[string]string{}}, "estado")
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotRepo_GuardarYLeer(t *testing.T) {
	kv := &fakeKV{data: map[string]string{}}
	repo := NewSnapshotRepository(kv, "estado")
	logo := "data:image/png;base64,AAA"

	require.NoError(t, repo.Save(context.Background(), &entity.Snapshot{
		Clientes:     []entity.Cliente{{ID: "cli-1", Nombre: "Minera Norte"}},
		PlatformLogo: &logo,
	}))
	assert.Contains(t, kv.data["estado"], `"platformLogo"`)

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Clientes, 1)
	assert.Equal(t, "Minera Norte", snap.Clientes[0].Nombre)
	require.NotNil(t, snap.PlatformLogo)
	assert.Equal(t, logo, *snap.PlatformLogo)
}

func TestSnapshotRepo_ErrorAlGuardar(t *testing.T) {
	repo := NewSnapshotRepository(&fakeKV{data: map[string]string{}, setErr: errors.New("OOM")}, "estado")
	err := repo.Save(context.Background(), &entity.Snapshot{})
	assert.ErrorContains(t, err, "OOM")
}

func TestSnapshotRepo_JSONInvalido(t *testing.T) {
	repo := NewSnapshotRepository(&fakeKV{data: map[string]string{"estado": "{"}}, "estado")
	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}
