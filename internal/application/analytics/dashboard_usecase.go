// Package analytics contiene las vistas de lectura por rol: tableros, kanban de proyectos,
// colas del revisor y el reporte PDF de contratación.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// DashboardUseCase tableros de administrador, revisor y usuario de cliente.
//
// Fuente de datos: el store (solo lectura). Todo se deriva en cada consulta.
type DashboardUseCase struct {
	store *store.Store
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: st, now: time.Now}
}

// Admin KPIs de ocupación e histogramas sobre los trabajadores registrados en el rango,
// más la tabla de estado de los proyectos publicados.
func (uc *DashboardUseCase) Admin(rango string) (*dto.AdminDashboardResponse, error) {
	r, err := reporting.ParseRange(rango)
	if err != nil {
		return nil, err
	}
	out := &dto.AdminDashboardResponse{Rango: r, EstadoProyectos: []dto.ProyectoEstadoRow{}}
	_ = uc.store.View(func(s *entity.Snapshot) error {
		workers := reporting.FilterByRegistration(s.Trabajadores, r, uc.now())
		out.KPIs = reporting.CountOccupancy(workers)
		out.RegistradosEnPeriodo = len(workers)
		out.Especialidades = reporting.TopN(reporting.Count(workers, reporting.ByEspecialidad), reporting.DefaultTopN)
		out.Ciudades = reporting.TopN(reporting.Count(workers, reporting.ByCiudad), reporting.DefaultTopN)
		out.Nacionalidades = reporting.TopN(reporting.Count(workers, reporting.ByNacionalidad), reporting.DefaultTopN)
		out.EstadosDocumentales = reporting.Count(workers, reporting.ByEstadoDocumental)

		for _, p := range s.Proyectos {
			if p.Estado != entity.ProyectoPublicado {
				continue
			}
			aprobados := aprobadosPorCliente(s.Trabajadores, p.ID)
			row := dto.ProyectoEstadoRow{
				ProyectoID:       p.ID,
				Nombre:           p.Nombre,
				Cliente:          clienteNombre(s, p.ClienteID),
				Requeridos:       p.CantidadTrabajadores,
				AprobadosCliente: aprobados,
				Estado:           lifecycle.ProjectCompletion(p, s.Trabajadores).Status,
			}
			if p.CantidadTrabajadores > 0 {
				row.Progreso = math.Min(100, float64(aprobados)/float64(p.CantidadTrabajadores)*100)
			}
			out.EstadoProyectos = append(out.EstadoProyectos, row)
		}
		out.ProyectosActivos = len(s.Proyectos)
		out.ClientesActivos = len(s.Clientes)
		return nil
	})
	return out, nil
}

// Revisor contadores del panel del revisor.
func (uc *DashboardUseCase) Revisor(revisorID string) (*dto.RevisorDashboardResponse, error) {
	out := &dto.RevisorDashboardResponse{}
	_ = uc.store.View(func(s *entity.Snapshot) error {
		for _, t := range s.Trabajadores {
			switch t.EstadoDocumental {
			case entity.EstadoEnRevision:
				out.EnRevision++
				if t.RevisorAsignadoID == revisorID {
					out.AsignadosAMi++
				}
			case entity.EstadoValidado:
				out.Validados++
			case entity.EstadoRechazadoDocumental:
				out.RechazadosDoc++
			}
			if t.EnPoolLibre() {
				out.PoolLibre++
			}
			if t.EstadoCliente == entity.ClienteRechazado {
				out.RechazadosCliente++
			}
		}
		for _, p := range s.Proyectos {
			if p.Estado == entity.ProyectoPublicado {
				out.ProyectosAbiertos++
			}
		}
		return nil
	})
	return out, nil
}

// Usuario proyectos publicados del cliente con su avance.
func (uc *DashboardUseCase) Usuario(clienteID string) (*dto.UsuarioDashboardResponse, error) {
	var out *dto.UsuarioDashboardResponse
	err := uc.store.View(func(s *entity.Snapshot) error {
		ci := s.ClienteIndex(clienteID)
		if ci < 0 {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, clienteID)
		}
		out = &dto.UsuarioDashboardResponse{
			ClienteID:     clienteID,
			ClienteNombre: s.Clientes[ci].Nombre,
			Proyectos:     []dto.ProyectoResumen{},
		}
		for _, p := range s.Proyectos {
			if p.ClienteID != clienteID || p.Estado != entity.ProyectoPublicado {
				continue
			}
			candidatos := 0
			for _, t := range s.Trabajadores {
				if t.ProyectoAsignado == p.ID {
					candidatos++
				}
			}
			out.Proyectos = append(out.Proyectos, dto.ProyectoResumen{
				ID:          p.ID,
				Nombre:      p.Nombre,
				Ciudad:      p.Ciudad,
				Candidatos:  candidatos,
				Completitud: lifecycle.ProjectCompletion(p, s.Trabajadores),
			})
		}
		return nil
	})
	return out, err
}

// aprobadosPorCliente candidatos del proyecto con decisión Aprobado del cliente.
func aprobadosPorCliente(workers []entity.Trabajador, proyectoID string) int {
	n := 0
	for _, t := range workers {
		if t.ProyectoAsignado == proyectoID && t.EstadoCliente == entity.ClienteAprobado {
			n++
		}
	}
	return n
}

// clienteNombre nombre del cliente o un marcador si la referencia quedó colgando.
func clienteNombre(s *entity.Snapshot, id string) string {
	if i := s.ClienteIndex(id); i >= 0 {
		return s.Clientes[i].Nombre
	}
	return "Cliente no encontrado"
}
