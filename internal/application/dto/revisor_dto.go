package dto

import (
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/distribution"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// RevisorRequest alta o edición de revisor. Password vacío conserva el actual al editar.
type RevisorRequest struct {
	Nombre             string   `json:"nombre"`
	Email              string   `json:"email"`
	Password           string   `json:"password,omitempty"`
	ProyectosAsignados []string `json:"proyectosAsignados"`
}

// RevisorResponse revisor (sin password) con su carga pendiente.
type RevisorResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Nombre             string    `json:"nombre"`
	Email              string    `json:"email"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	ProyectosAsignados []string  `json:"proyectosAsignados"`
	Pendientes         int       `json:"pendientes"`
}

// ToRevisorResponse mapea el revisor; la carga se calcula aparte.
func ToRevisorResponse(r entity.Revisor, pendientes int) RevisorResponse {
	proyectos := r.ProyectosAsignados
	if proyectos == nil {
		proyectos = []string{}
	}
	return RevisorResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		Nombre:             r.Nombre,
		Email:              r.Email,
		FechaCreacion:      r.FechaCreacion,
		ProyectosAsignados: proyectos,
		Pendientes:         pendientes,
	}
}

// DistribuirRequest asignaciones explícitas trabajador → revisor.
type DistribuirRequest struct {
	Asignaciones []distribution.Assignment `json:"asignaciones"`
}

// AutoDistribuirRequest revisores que participan del reparto; vacío = todos.
type AutoDistribuirRequest struct {
	RevisorIDs []string `json:"revisorIds"`
}

// DistribucionResponse resultado del reparto.
type DistribucionResponse struct {
	Asignaciones []distribution.Assignment `json:"asignaciones"`
	Actualizados int                       `json:"actualizados"`
	Cargas       []distribution.Load       `json:"cargas"`
}

// DistribucionEstadoResponse panel de distribución: pendientes sin revisor y carga por revisor.
type DistribucionEstadoResponse struct {
	SinAsignar []TrabajadorResponse `json:"sinAsignar"`
	Cargas     []distribution.Load  `json:"cargas"`
}
