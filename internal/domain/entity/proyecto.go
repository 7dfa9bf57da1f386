package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoProyecto ciclo de vida de un proyecto: borrador → publicado. Nunca se elimina.
type EstadoProyecto string

const (
	ProyectoBorrador  EstadoProyecto = "borrador"
	ProyectoPublicado EstadoProyecto = "publicado"
)

// CategoriaTrabajador categoría del cargo solicitado.
type CategoriaTrabajador string

const (
	CategoriaTecnico           CategoriaTrabajador = "Técnico"
	CategoriaTecnicoCalificado CategoriaTrabajador = "Técnico Calificado"
	CategoriaProfesional       CategoriaTrabajador = "Profesional"
)

// TurnoAsignado distribución de un cargo en un turno de trabajo.
type TurnoAsignado struct {
	Nombre   string `json:"nombre"`
	Horario  string `json:"horario"`
	Cantidad int    `json:"cantidad"`
}

// Puesto cargo requerido por un proyecto.
type Puesto struct {
	Tipo      string              `json:"tipo"`
	Categoria CategoriaTrabajador `json:"categoria"`
	Cantidad  int                 `json:"cantidad"`
	Sueldo    decimal.Decimal     `json:"sueldo"`
	Turnos    []TurnoAsignado     `json:"turnos"`
}

// Proyecto encargo de reclutamiento de un cliente.
// CantidadTrabajadores es siempre la suma de Puesto.Cantidad.
type Proyecto struct {
	ID                        string         `json:"id"`
	Nombre                    string         `json:"nombre"`
	ClienteID                 string         `json:"clienteId"`
	CantidadTrabajadores      int            `json:"cantidadTrabajadores"`
	Puestos                   []Puesto       `json:"puestos"`
	Ciudad                    string         `json:"ciudad"`
	FechaInicioReclutamiento  time.Time      `json:"fechaInicioReclutamiento"`
	FechaTerminoReclutamiento time.Time      `json:"fechaTerminoReclutamiento"`
	FechaInicioTrabajo        time.Time      `json:"fechaInicioTrabajo"`
	UsuariosAsignados         []string       `json:"usuariosAsignados"`
	Beneficios                string         `json:"beneficios,omitempty"`
	Estado                    EstadoProyecto `json:"estado"`
}

// Clone devuelve una copia profunda del proyecto.
func (p Proyecto) Clone() Proyecto {
	out := p
	out.Puestos = make([]Puesto, len(p.Puestos))
	for i, pu := range p.Puestos {
		pu.Turnos = append([]TurnoAsignado(nil), pu.Turnos...)
		out.Puestos[i] = pu
	}
	out.UsuariosAsignados = append([]string(nil), p.UsuariosAsignados...)
	return out
}
