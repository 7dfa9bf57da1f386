package repository

import (
	"context"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia del estado completo de la plataforma.
// La implementación vive en infrastructure (archivo, PostgreSQL, Redis o memoria).
type SnapshotRepository interface {
	// Load devuelve (nil, nil) si todavía no hay nada guardado.
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, s *entity.Snapshot) error
}
