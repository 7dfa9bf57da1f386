// Package memory repositorio de snapshot en memoria (STORAGE_DRIVER=memory y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda una copia profunda del último snapshot.
// Si SaveErr no es nil, Save lo devuelve sin guardar.
type SnapshotRepo struct {
	mu      sync.Mutex
	snap    *entity.Snapshot
	saves   int
	SaveErr error
}

// NewSnapshotRepository repositorio vacío.
func NewSnapshotRepository() *SnapshotRepo {
	return &SnapshotRepo{}
}

func (r *SnapshotRepo) Load(_ context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		return nil, nil
	}
	return r.snap.Clone(), nil
}

func (r *SnapshotRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.snap = snap.Clone()
	r.saves++
	return nil
}

// Saves cantidad de guardados exitosos.
func (r *SnapshotRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
