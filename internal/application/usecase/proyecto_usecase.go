package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// ProyectoUseCase alta y edición de proyectos. Los proyectos no se eliminan.
type ProyectoUseCase struct {
	store *store.Store
}

// NewProyectoUseCase construye el caso de uso.
func NewProyectoUseCase(st *store.Store) *ProyectoUseCase {
	return &ProyectoUseCase{store: st}
}

func parseEstado(s string) (entity.EstadoProyecto, error) {
	switch e := entity.EstadoProyecto(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return entity.ProyectoBorrador, nil
	case entity.ProyectoBorrador, entity.ProyectoPublicado:
		return e, nil
	default:
		return "", fmt.Errorf("%w: estado de proyecto %q", domain.ErrInvalidInput, s)
	}
}

// buildProyecto arma y valida la entidad. CantidadTrabajadores siempre es la suma de los cargos.
func buildProyecto(id string, in dto.ProyectoRequest) (entity.Proyecto, error) {
	estado, err := parseEstado(in.Estado)
	if err != nil {
		return entity.Proyecto{}, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return entity.Proyecto{}, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	puestos := dto.ToPuestos(in.Puestos)
	p := entity.Proyecto{
		ID:                        id,
		Nombre:                    strings.TrimSpace(in.Nombre),
		ClienteID:                 in.ClienteID,
		CantidadTrabajadores:      lifecycle.TotalRequired(puestos),
		Puestos:                   puestos,
		Ciudad:                    in.Ciudad,
		FechaInicioReclutamiento:  in.FechaInicioReclutamiento,
		FechaTerminoReclutamiento: in.FechaTerminoReclutamiento,
		FechaInicioTrabajo:        in.FechaInicioTrabajo,
		UsuariosAsignados:         append([]string{}, in.UsuariosAsignados...),
		Beneficios:                in.Beneficios,
		Estado:                    estado,
	}
	if err := lifecycle.ValidateProject(p); err != nil {
		return entity.Proyecto{}, err
	}
	return p, nil
}

func addProyectoActivo(c *entity.Cliente, id string) {
	for _, pid := range c.ProyectosActivos {
		if pid == id {
			return
		}
	}
	c.ProyectosActivos = append(c.ProyectosActivos, id)
}

func removeProyectoActivo(c *entity.Cliente, id string) {
	out := c.ProyectosActivos[:0]
	for _, pid := range c.ProyectosActivos {
		if pid != id {
			out = append(out, pid)
		}
	}
	c.ProyectosActivos = out
}

func (uc *ProyectoUseCase) toResponse(s *entity.Snapshot, p entity.Proyecto) dto.ProyectoResponse {
	resp := dto.ProyectoResponse{
		Proyecto:    p,
		Completitud: lifecycle.ProjectCompletion(p, s.Trabajadores),
	}
	if i := s.ClienteIndex(p.ClienteID); i >= 0 {
		resp.ClienteNombre = s.Clientes[i].Nombre
	}
	return resp
}

// Create crea el proyecto y lo agrega a los proyectos activos del cliente.
func (uc *ProyectoUseCase) Create(ctx context.Context, in dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := buildProyecto(store.NewID(store.PrefixProyecto), in)
	if err != nil {
		return nil, err
	}
	var resp dto.ProyectoResponse
	err = uc.store.Mutate(ctx, "crear_proyecto", func(s *entity.Snapshot) error {
		ci := s.ClienteIndex(p.ClienteID)
		if ci < 0 {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, p.ClienteID)
		}
		s.Proyectos = append(s.Proyectos, p)
		addProyectoActivo(&s.Clientes[ci], p.ID)
		resp = uc.toResponse(s, p)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &resp, err
}

// Update reemplaza el proyecto. Si cambia de cliente, se mueve entre sus proyectos activos.
func (uc *ProyectoUseCase) Update(ctx context.Context, id string, in dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := buildProyecto(id, in)
	if err != nil {
		return nil, err
	}
	var resp dto.ProyectoResponse
	err = uc.store.Mutate(ctx, "actualizar_proyecto", func(s *entity.Snapshot) error {
		i := s.ProyectoIndex(id)
		if i < 0 {
			return fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, id)
		}
		ci := s.ClienteIndex(p.ClienteID)
		if ci < 0 {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, p.ClienteID)
		}
		if prev := s.Proyectos[i].ClienteID; prev != p.ClienteID {
			if pi := s.ClienteIndex(prev); pi >= 0 {
				removeProyectoActivo(&s.Clientes[pi], id)
			}
		}
		addProyectoActivo(&s.Clientes[ci], id)
		s.Proyectos[i] = p
		resp = uc.toResponse(s, p)
		return nil
	})
	if store.Failed(err) {
		return nil, err
	}
	return &resp, err
}

// GetByID proyecto con completitud. Un usuario de cliente solo ve los publicados de su cliente.
func (uc *ProyectoUseCase) GetByID(a auth.Actor, id string) (*dto.ProyectoResponse, error) {
	var out *dto.ProyectoResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		p, err := findProyecto(s, id)
		if err != nil {
			return err
		}
		if err := a.CanAccessProject(p); err != nil {
			return err
		}
		if a.Role == entity.RolUsuario && p.Estado != entity.ProyectoPublicado {
			return fmt.Errorf("%w: proyecto %s", domain.ErrNotFound, id)
		}
		r := uc.toResponse(s, p)
		out = &r
		return nil
	})
	return out, err
}

// List proyectos filtrados por estado y cliente (vacío = todos).
func (uc *ProyectoUseCase) List(estado, clienteID string) ([]dto.ProyectoResponse, error) {
	out := []dto.ProyectoResponse{}
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, p := range s.Proyectos {
			if estado != "" && string(p.Estado) != estado {
				continue
			}
			if clienteID != "" && p.ClienteID != clienteID {
				continue
			}
			out = append(out, uc.toResponse(s, p))
		}
		return nil
	})
	return out, nil
}
