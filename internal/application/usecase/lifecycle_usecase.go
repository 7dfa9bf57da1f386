package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// LifecycleUseCase transiciones del candidato: revisión documental, asignación y etapas del cliente.
// Las reglas viven en domain/lifecycle; aquí se agregan permisos y persistencia.
//
// Todas las operaciones devuelven la respuesta aunque err sea *store.PersistenceWarning.
type LifecycleUseCase struct {
	store *store.Store
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(st *store.Store) *LifecycleUseCase {
	return &LifecycleUseCase{store: st}
}

// transition aplica fn al trabajador id dentro de una mutación del store.
func (uc *LifecycleUseCase) transition(
	ctx context.Context,
	op, id string,
	fn func(s *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error),
) (*dto.TrabajadorResponse, error) {
	var updated entity.Trabajador
	err := uc.store.Mutate(ctx, op, func(s *entity.Snapshot) error {
		i, err := findTrabajador(s, id)
		if err != nil {
			return err
		}
		next, err := fn(s, s.Trabajadores[i])
		if err != nil {
			return err
		}
		s.Trabajadores[i] = next
		updated = next
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	resp := dto.ToTrabajadorResponse(updated)
	return &resp, err
}

// ValidateDocuments En revisión → Validado.
func (uc *LifecycleUseCase) ValidateDocuments(ctx context.Context, id string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "validar_documentos", id, func(_ *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		return lifecycle.ValidateDocuments(t)
	})
}

// RejectDocuments rechazo documental con motivo obligatorio.
func (uc *LifecycleUseCase) RejectDocuments(ctx context.Context, id, motivo string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "rechazar_documentos", id, func(_ *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		return lifecycle.RejectDocuments(t, motivo)
	})
}

// RequestRevalidation devuelve a la cola de validación a un rechazado documental.
func (uc *LifecycleUseCase) RequestRevalidation(ctx context.Context, id string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "revalidar", id, func(_ *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		return lifecycle.RequestRevalidation(t), nil
	})
}

// AssignToProject asigna un trabajador del pool libre a un proyecto publicado.
func (uc *LifecycleUseCase) AssignToProject(ctx context.Context, id, proyectoID string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "asignar_proyecto", id, func(s *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		p, err := findProyecto(s, proyectoID)
		if err != nil {
			return t, err
		}
		if p.Estado != entity.ProyectoPublicado {
			return t, fmt.Errorf("%w: el proyecto %s no está publicado", domain.ErrPrecondition, p.Nombre)
		}
		return lifecycle.AssignToProject(t, p.ID)
	})
}

// projectOf proyecto actual del trabajador, verificando permisos del actor.
func projectOf(s *entity.Snapshot, a auth.Actor, t entity.Trabajador) error {
	if t.ProyectoAsignado == "" {
		return fmt.Errorf("%w: el trabajador no está asignado a un proyecto", domain.ErrPrecondition)
	}
	p, err := findProyecto(s, t.ProyectoAsignado)
	if err != nil {
		return err
	}
	return a.CanAccessProject(p)
}

// AdvanceStage aprueba al candidato en su etapa actual.
func (uc *LifecycleUseCase) AdvanceStage(ctx context.Context, a auth.Actor, id string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "avanzar_etapa", id, func(s *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		if err := projectOf(s, a, t); err != nil {
			return t, err
		}
		return lifecycle.AdvanceStage(t)
	})
}

// RejectAtStage rechaza al candidato y lo devuelve al pool libre.
func (uc *LifecycleUseCase) RejectAtStage(ctx context.Context, a auth.Actor, id, motivo string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "rechazar_etapa", id, func(s *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		if err := projectOf(s, a, t); err != nil {
			return t, err
		}
		return lifecycle.RejectAtStage(t, motivo)
	})
}

// AdvanceContracting Carpeta Solicitada → A acreditar → Contratado.
func (uc *LifecycleUseCase) AdvanceContracting(ctx context.Context, a auth.Actor, id string) (*dto.TrabajadorResponse, error) {
	return uc.transition(ctx, "avanzar_contratacion", id, func(s *entity.Snapshot, t entity.Trabajador) (entity.Trabajador, error) {
		if err := projectOf(s, a, t); err != nil {
			return t, err
		}
		return lifecycle.AdvanceContracting(t)
	})
}

// RequestFolders solicitud masiva de carpetas para los aprobados del proyecto.
// Ids de otro proyecto o en otra etapa se informan como omitidos.
func (uc *LifecycleUseCase) RequestFolders(ctx context.Context, a auth.Actor, proyectoID string, in dto.IDsRequest) (*dto.BulkResponse, error) {
	resp := &dto.BulkResponse{Actualizados: []string{}, Omitidos: []string{}}
	err := uc.store.Mutate(ctx, "solicitar_carpetas", func(s *entity.Snapshot) error {
		p, err := findProyecto(s, proyectoID)
		if err != nil {
			return err
		}
		if err := a.CanAccessProject(p); err != nil {
			return err
		}
		var ids []string
		for _, id := range in.IDs {
			if i := s.TrabajadorIndex(id); i >= 0 && s.Trabajadores[i].ProyectoAsignado == p.ID {
				ids = append(ids, id)
			}
		}
		updated, moved := lifecycle.RequestFolders(s.Trabajadores, ids, in.Nota)
		s.Trabajadores = updated

		done := make(map[string]bool, len(moved))
		for _, id := range moved {
			done[id] = true
		}
		resp.Actualizados = append(resp.Actualizados, moved...)
		for _, id := range in.IDs {
			if !done[id] {
				resp.Omitidos = append(resp.Omitidos, id)
			}
		}
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return resp, err
}
