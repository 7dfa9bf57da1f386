package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/distribution"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// DistributionUseCase reparto de trabajadores en revisión entre revisores.
type DistributionUseCase struct {
	store *store.Store
}

// NewDistributionUseCase construye el caso de uso.
func NewDistributionUseCase(st *store.Store) *DistributionUseCase {
	return &DistributionUseCase{store: st}
}

// Status pendientes sin revisor y carga de cada revisor.
func (uc *DistributionUseCase) Status() (*dto.DistribucionEstadoResponse, error) {
	var out dto.DistribucionEstadoResponse
	_ = uc.store.View(func(s *entity.Snapshot) error {
		out.SinAsignar = dto.ToTrabajadorResponses(distribution.Unassigned(s.Trabajadores))
		out.Cargas = distribution.Loads(s.Trabajadores, s.Revisores)
		return nil
	})
	return &out, nil
}

// Distribute aplica asignaciones explícitas. No verifica que el revisor exista.
func (uc *DistributionUseCase) Distribute(ctx context.Context, in dto.DistribuirRequest) (*dto.DistribucionResponse, error) {
	resp := &dto.DistribucionResponse{Asignaciones: in.Asignaciones}
	err := uc.store.Mutate(ctx, "distribuir", func(s *entity.Snapshot) error {
		s.Trabajadores, resp.Actualizados = distribution.Distribute(s.Trabajadores, in.Asignaciones)
		resp.Cargas = distribution.Loads(s.Trabajadores, s.Revisores)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return resp, err
}

// AutoDistribute reparte round-robin los pendientes sin revisor entre los revisores
// indicados (todos si la lista está vacía), en el orden de la colección.
func (uc *DistributionUseCase) AutoDistribute(ctx context.Context, in dto.AutoDistribuirRequest) (*dto.DistribucionResponse, error) {
	resp := &dto.DistribucionResponse{}
	err := uc.store.Mutate(ctx, "distribuir_auto", func(s *entity.Snapshot) error {
		revisores := s.Revisores
		if len(in.RevisorIDs) > 0 {
			want := make(map[string]bool, len(in.RevisorIDs))
			for _, id := range in.RevisorIDs {
				want[id] = true
			}
			revisores = nil
			for _, r := range s.Revisores {
				if want[r.ID] {
					revisores = append(revisores, r)
				}
			}
			if len(revisores) == 0 {
				return fmt.Errorf("%w: ninguno de los revisores indicados existe", domain.ErrNoReviewers)
			}
		}
		assignments, err := distribution.AutoDistribute(distribution.Unassigned(s.Trabajadores), revisores)
		if err != nil {
			return err
		}
		resp.Asignaciones = assignments
		s.Trabajadores, resp.Actualizados = distribution.Distribute(s.Trabajadores, assignments)
		resp.Cargas = distribution.Loads(s.Trabajadores, s.Revisores)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return resp, err
}
