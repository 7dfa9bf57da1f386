package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// TurnoRequest asignación de personas a un turno.
type TurnoRequest struct {
	Nombre   string `json:"nombre"`
	Horario  string `json:"horario"`
	Cantidad int    `json:"cantidad"`
}

// PuestoRequest cargo requerido por el proyecto.
type PuestoRequest struct {
	Tipo      string                     `json:"tipo"`
	Categoria entity.CategoriaTrabajador `json:"categoria"`
	Cantidad  int                        `json:"cantidad"`
	Sueldo    decimal.Decimal            `json:"sueldo"`
	Turnos    []TurnoRequest             `json:"turnos"`
}

// ProyectoRequest alta o edición de proyecto. Estado: "borrador" o "publicado".
type ProyectoRequest struct {
	Nombre                    string          `json:"nombre"`
	ClienteID                 string          `json:"clienteId"`
	Puestos                   []PuestoRequest `json:"puestos"`
	Ciudad                    string          `json:"ciudad"`
	FechaInicioReclutamiento  time.Time       `json:"fechaInicioReclutamiento"`
	FechaTerminoReclutamiento time.Time       `json:"fechaTerminoReclutamiento"`
	FechaInicioTrabajo        time.Time       `json:"fechaInicioTrabajo"`
	UsuariosAsignados         []string        `json:"usuariosAsignados"`
	Beneficios                string          `json:"beneficios"`
	Estado                    string          `json:"estado"`
}

// ProyectoResponse proyecto con su completitud derivada.
type ProyectoResponse struct {
	entity.Proyecto
	ClienteNombre string               `json:"clienteNombre,omitempty"`
	Completitud   lifecycle.Completion `json:"completitud"`
}

// ToPuestos convierte los cargos de la entrada en entidades.
func ToPuestos(in []PuestoRequest) []entity.Puesto {
	out := make([]entity.Puesto, 0, len(in))
	for _, p := range in {
		turnos := make([]entity.TurnoAsignado, 0, len(p.Turnos))
		for _, t := range p.Turnos {
			turnos = append(turnos, entity.TurnoAsignado{Nombre: t.Nombre, Horario: t.Horario, Cantidad: t.Cantidad})
		}
		out = append(out, entity.Puesto{
			Tipo:      p.Tipo,
			Categoria: p.Categoria,
			Cantidad:  p.Cantidad,
			Sueldo:    p.Sueldo,
			Turnos:    turnos,
		})
	}
	return out
}
