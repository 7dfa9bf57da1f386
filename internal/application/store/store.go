// Package store contenedor del estado de la plataforma. Todas las mutaciones pasan por
// Mutate: se aplican sobre un clon y se persisten después del reemplazo.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

// PersistenceWarning la mutación quedó aplicada en memoria pero no se pudo persistir.
// No es un fallo de la operación.
type PersistenceWarning struct {
	Op  string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("persistencia (%s): %v", w.Op, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }

// IsPersistenceWarning informa si err es (o envuelve) una advertencia de persistencia.
func IsPersistenceWarning(err error) bool {
	var w *PersistenceWarning
	return errors.As(err, &w)
}

// Failed err es un fallo real de la operación (ni nil ni advertencia).
func Failed(err error) bool {
	return err != nil && !IsPersistenceWarning(err)
}

// Store estado autoritativo en memoria.
//
// Cada mutación recibe una versión creciente. Los guardados se serializan con saveMu y
// una versión anterior a la última persistida no se escribe.
type Store struct {
	mu      sync.RWMutex
	snap    *entity.Snapshot
	version uint64
	repo    repository.SnapshotRepository
	seed    *entity.Snapshot
	log     *logger.Logger

	saveMu       sync.Mutex
	savedVersion uint64
}

// New construye el store. seed se usa cuando el repositorio está vacío.
func New(repo repository.SnapshotRepository, seed *entity.Snapshot, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		snap: seed.Clone(),
		repo: repo,
		seed: seed.Clone(),
		log:  log.Component("store"),
	}
}

// Load rehidrata el estado desde el repositorio. Si está vacío, queda el seed y se
// intenta guardarlo para que el siguiente arranque lo encuentre.
func (s *Store) Load(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar estado: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if loaded == nil {
		s.snap = s.seed.Clone()
		s.log.Info().Int("trabajadores", len(s.snap.Trabajadores)).Msg("almacenamiento vacío, usando datos iniciales")
		if err := s.repo.Save(ctx, s.snap); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo guardar el estado inicial")
			return &PersistenceWarning{Op: "load", Err: err}
		}
		return nil
	}
	s.snap = loaded
	s.log.Info().
		Int("trabajadores", len(loaded.Trabajadores)).
		Int("proyectos", len(loaded.Proyectos)).
		Int("clientes", len(loaded.Clientes)).
		Msg("estado cargado")
	return nil
}

// Snapshot copia profunda del estado actual.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// View ejecuta fn con acceso de solo lectura, sin copiar. fn no debe retener ni
// modificar el snapshot.
func (s *Store) View(fn func(*entity.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

// Mutate aplica fn sobre un clon y lo instala si fn no falla. Después persiste fuera del
// candado de lectura; un error de persistencia se registra y se devuelve como *PersistenceWarning.
func (s *Store) Mutate(ctx context.Context, op string, fn func(*entity.Snapshot) error) error {
	s.mu.Lock()
	next := s.snap.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		s.log.Debug().Str("op", op).Err(err).Msg("mutación rechazada")
		return err
	}
	s.snap = next
	s.version++
	version := s.version
	toSave := next.Clone()
	s.mu.Unlock()

	s.log.Debug().Str("op", op).Uint64("version", version).Msg("mutación aplicada")
	return s.persist(ctx, op, version, toSave)
}

// persist guarda snap salvo que ya se haya persistido una versión más nueva.
func (s *Store) persist(ctx context.Context, op string, version uint64, snap *entity.Snapshot) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if version < s.savedVersion {
		s.log.Debug().Str("op", op).Uint64("version", version).Uint64("persistida", s.savedVersion).Msg("guardado omitido, hay una versión más nueva")
		return nil
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.log.Warn().Str("op", op).Err(err).Msg("no se pudo persistir el estado")
		return &PersistenceWarning{Op: op, Err: err}
	}
	s.savedVersion = version
	return nil
}

// Replace reemplaza el estado completo (restauración de respaldo).
func (s *Store) Replace(ctx context.Context, snap *entity.Snapshot) error {
	return s.Mutate(ctx, "restore", func(cur *entity.Snapshot) error {
		*cur = *snap.Clone()
		return nil
	})
}

// NewID identificador con prefijo: trab-, pro-, cli-, user-, rev-.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// Prefijos de identificadores por colección.
const (
	PrefixTrabajador = "trab-"
	PrefixProyecto   = "pro-"
	PrefixCliente    = "cli-"
	PrefixUsuario    = "user-"
	PrefixRevisor    = "rev-"
	PrefixAdmin      = "admin-"
)
