package usecase

import (
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// findProyecto proyecto por id o ErrNotFound.
func findProyecto(s *entity.Snapshot, id string) (entity.Proyecto, error) {
	i := s.ProyectoIndex(id)
	if i < 0 {
		return entity.Proyecto{}, fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, id)
	}
	return s.Proyectos[i], nil
}

// findTrabajador índice del trabajador o ErrNotFound.
func findTrabajador(s *entity.Snapshot, id string) (int, error) {
	i := s.TrabajadorIndex(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: trabajador %s", domain.ErrNotFound, id)
	}
	return i, nil
}
