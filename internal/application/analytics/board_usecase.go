package analytics

import (
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// BoardUseCase kanban de proyectos y listados del revisor.
type BoardUseCase struct {
	store *store.Store
}

// NewBoardUseCase construye el caso de uso.
func NewBoardUseCase(st *store.Store) *BoardUseCase {
	return &BoardUseCase{store: st}
}

// visibleProject proyecto si el actor puede verlo. Los usuarios de cliente solo ven
// proyectos publicados de su cliente.
func visibleProject(s *entity.Snapshot, a auth.Actor, id string) (entity.Proyecto, error) {
	i := s.ProyectoIndex(id)
	if i < 0 {
		return entity.Proyecto{}, fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, id)
	}
	p := s.Proyectos[i]
	if err := a.CanAccessProject(p); err != nil {
		return entity.Proyecto{}, err
	}
	if a.Role == entity.RolUsuario && p.Estado != entity.ProyectoPublicado {
		return entity.Proyecto{}, fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, id)
	}
	return p, nil
}

// Board kanban del proyecto con historial de rechazos y panel de completitud.
func (uc *BoardUseCase) Board(a auth.Actor, proyectoID, search string) (*dto.BoardResponse, error) {
	var out *dto.BoardResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		p, err := visibleProject(s, a, proyectoID)
		if err != nil {
			return err
		}
		b := reporting.ProjectBoard(p, s.Trabajadores, search)
		resp := &dto.BoardResponse{
			Proyecto: dto.ProyectoResponse{
				Proyecto:      b.Proyecto,
				ClienteNombre: clienteNombre(s, p.ClienteID),
				Completitud:   b.Completion,
			},
			Columnas:   make([]dto.ColumnResponse, 0, len(b.Columnas)),
			Rechazados: dto.ToTrabajadorResponses(b.Rechazados),
		}
		for _, c := range b.Columnas {
			resp.Columnas = append(resp.Columnas, dto.ColumnResponse{
				Etapa:        string(c.Etapa),
				Motivos:      c.Motivos,
				Trabajadores: dto.ToTrabajadorResponses(c.Trabajadores),
			})
		}
		out = resp
		return nil
	})
	return out, err
}

// ValidationQueue trabajadores en revisión documental. Con revisorID solo los asignados a él.
func (uc *BoardUseCase) ValidationQueue(revisorID, search string) []dto.TrabajadorResponse {
	return uc.filter(search, func(t entity.Trabajador) bool {
		if t.EstadoDocumental != entity.EstadoEnRevision {
			return false
		}
		return revisorID == "" || t.RevisorAsignadoID == revisorID
	})
}

// DocumentalRejections rechazados en la revisión documental.
func (uc *BoardUseCase) DocumentalRejections(search string) []dto.TrabajadorResponse {
	return uc.filter(search, func(t entity.Trabajador) bool {
		return t.EstadoDocumental == entity.EstadoRechazadoDocumental
	})
}

// FreePool candidatos asignables: validados y sin proyecto.
func (uc *BoardUseCase) FreePool(search string) []dto.TrabajadorResponse {
	return uc.filter(search, entity.Trabajador.EnPoolLibre)
}

// Rejected listado consolidado de rechazos (documental o del cliente).
func (uc *BoardUseCase) Rejected(search string) []dto.TrabajadorResponse {
	var out []dto.TrabajadorResponse
	_ = uc.store.View(func(s *entity.Snapshot) error {
		out = dto.ToTrabajadorResponses(reporting.Rejected(reporting.Search(s.Trabajadores, search)))
		return nil
	})
	return out
}

func (uc *BoardUseCase) filter(search string, keep func(entity.Trabajador) bool) []dto.TrabajadorResponse {
	var matched []entity.Trabajador
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, t := range reporting.Search(s.Trabajadores, search) {
			if keep(t) {
				matched = append(matched, t)
			}
		}
		return nil
	})
	return dto.ToTrabajadorResponses(matched)
}
