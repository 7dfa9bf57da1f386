package store_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

// fakeRepo repositorio en memoria que puede fallar a pedido.
type fakeRepo struct {
	mu      sync.Mutex
	saved   *entity.Snapshot
	saves   int
	saveErr error
	loadErr error
}

func (f *fakeRepo) Load(context.Context) (*entity.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.saved == nil {
		return nil, nil
	}
	return f.saved.Clone(), nil
}

func (f *fakeRepo) Save(_ context.Context, s *entity.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = s.Clone()
	return nil
}

func seed() *entity.Snapshot {
	return &entity.Snapshot{
		Trabajadores: []entity.Trabajador{{ID: "t1", Numero: 1, Nombre: "Ana", EstadoDocumental: entity.EstadoEnRevision}},
		Admins:       []entity.Admin{{ID: "admin-1", Email: "admin@demo.cl", Password: "admin"}},
	}
}

func TestLoad_RepositorioVacioUsaSeed(t *testing.T) {
	repo := &fakeRepo{}
	s := store.New(repo, seed(), logger.Nop())

	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Snapshot().Trabajadores, 1)
	assert.Equal(t, 1, repo.saves, "el seed se persiste")
}

func TestLoad_RepositorioConDatos(t *testing.T) {
	repo := &fakeRepo{saved: &entity.Snapshot{Trabajadores: []entity.Trabajador{{ID: "x"}, {ID: "y"}}}}
	s := store.New(repo, seed(), nil)

	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Snapshot().Trabajadores, 2)
	assert.Zero(t, repo.saves)
}

func TestLoad_ErrorDeLectura(t *testing.T) {
	s := store.New(&fakeRepo{loadErr: errors.New("sin conexión")}, seed(), nil)
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.False(t, store.IsPersistenceWarning(err))
}

func TestMutate_AplicaYPersiste(t *testing.T) {
	repo := &fakeRepo{}
	s := store.New(repo, seed(), nil)

	err := s.Mutate(context.Background(), "renombrar", func(snap *entity.Snapshot) error {
		snap.Trabajadores[0].Nombre = "Ana María"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", s.Snapshot().Trabajadores[0].Nombre)
	assert.Equal(t, "Ana María", repo.saved.Trabajadores[0].Nombre)
}

func TestMutate_FalloNoModificaEstado(t *testing.T) {
	repo := &fakeRepo{}
	s := store.New(repo, seed(), nil)
	boom := errors.New("precondición")

	err := s.Mutate(context.Background(), "fallida", func(snap *entity.Snapshot) error {
		snap.Trabajadores[0].Nombre = "cambiado"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Ana", s.Snapshot().Trabajadores[0].Nombre)
	assert.Zero(t, repo.saves)
}

func TestMutate_ErrorDePersistenciaEsAdvertencia(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disco lleno")}
	s := store.New(repo, seed(), nil)

	err := s.Mutate(context.Background(), "validar", func(snap *entity.Snapshot) error {
		snap.Trabajadores[0].EstadoDocumental = entity.EstadoValidado
		return nil
	})
	require.Error(t, err)
	assert.True(t, store.IsPersistenceWarning(err))
	assert.False(t, store.Failed(err))
	assert.Contains(t, err.Error(), "disco lleno")
	assert.Equal(t, entity.EstadoValidado, s.Snapshot().Trabajadores[0].EstadoDocumental,
		"el estado en memoria sigue siendo válido")
}

func TestSnapshot_EsCopia(t *testing.T) {
	s := store.New(&fakeRepo{}, seed(), nil)
	snap := s.Snapshot()
	snap.Trabajadores[0].Nombre = "otro"
	assert.Equal(t, "Ana", s.Snapshot().Trabajadores[0].Nombre)
}

func TestMutate_Concurrente(t *testing.T) {
	s := store.New(&fakeRepo{}, &entity.Snapshot{}, nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Mutate(context.Background(), "agregar", func(snap *entity.Snapshot) error {
				snap.Trabajadores = append(snap.Trabajadores, entity.Trabajador{ID: store.NewID(store.PrefixTrabajador)})
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().Trabajadores, 50)
}

func TestReplace(t *testing.T) {
	s := store.New(&fakeRepo{}, seed(), nil)
	require.NoError(t, s.Replace(context.Background(), &entity.Snapshot{Revisores: []entity.Revisor{{ID: "rev-1"}}}))
	snap := s.Snapshot()
	assert.Empty(t, snap.Trabajadores)
	assert.Len(t, snap.Revisores, 1)
}

func TestNewID_Prefijo(t *testing.T) {
	id := store.NewID(store.PrefixProyecto)
	assert.True(t, strings.HasPrefix(id, "pro-"))
	assert.NotEqual(t, id, store.NewID(store.PrefixProyecto))
}

// lentoRepo retiene el primer Save hasta que se cierre liberar.
type lentoRepo struct {
	fakeRepo
	once    sync.Once
	dentro  chan struct{}
	liberar chan struct{}
}

func (r *lentoRepo) Save(ctx context.Context, s *entity.Snapshot) error {
	primero := false
	r.once.Do(func() { primero = true })
	if primero {
		close(r.dentro)
		<-r.liberar
	}
	return r.fakeRepo.Save(ctx, s)
}

func agregarAdmin(id string) func(*entity.Snapshot) error {
	return func(s *entity.Snapshot) error {
		s.Admins = append(s.Admins, entity.Admin{ID: id})
		return nil
	}
}

func TestMutate_GuardadoLentoNoPisaEstadoNuevo(t *testing.T) {
	repo := &lentoRepo{dentro: make(chan struct{}), liberar: make(chan struct{})}
	s := store.New(repo, seed(), logger.Nop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.Mutate(context.Background(), "primero", agregarAdmin("admin-2")))
	}()
	<-repo.dentro

	go func() {
		defer wg.Done()
		assert.NoError(t, s.Mutate(context.Background(), "segundo", agregarAdmin("admin-3")))
	}()
	require.Eventually(t, func() bool { return len(s.Snapshot().Admins) == 3 }, time.Second, 5*time.Millisecond)

	close(repo.liberar)
	wg.Wait()

	saved, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved.Admins, 3, "lo persistido corresponde a la última mutación")
	assert.Equal(t, 2, repo.saves)
}
