package dto

import (
	"sort"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// RegistroRequest alta de cuenta del portal del trabajador.
type RegistroRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistroResponse id de la cuenta creada (coincide con el del trabajador).
type RegistroResponse struct {
	ID string `json:"id"`
}

// PerfilRequest datos personales que completa el trabajador (o el administrador).
type PerfilRequest struct {
	Nombre          string     `json:"nombre"`
	Especialidad    string     `json:"especialidad"`
	Edad            int        `json:"edad"`
	Rut             string     `json:"rut"`
	Ciudad          string     `json:"ciudad"`
	Nacionalidad    string     `json:"nacionalidad"`
	Telefono        string     `json:"telefono"`
	FechaNacimiento *time.Time `json:"fechaNacimiento"`
}

// CredencialRequest cambio de email o contraseña; los vacíos no se modifican.
type CredencialRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DocumentoRequest documento adjunto (tipo → referencia o data URL).
type DocumentoRequest struct {
	Tipo      string `json:"tipo"`
	Contenido string `json:"contenido"`
}

// DocumentoResponse contenido de un documento.
type DocumentoResponse struct {
	Tipo      string `json:"tipo"`
	Contenido string `json:"contenido"`
}

// AsignarProyectoRequest asignación de un trabajador del pool libre.
type AsignarProyectoRequest struct {
	ProyectoID string `json:"proyectoId"`
}

// TrabajadorFilter filtros del listado de trabajadores.
type TrabajadorFilter struct {
	Q                string `query:"q"`
	EstadoDocumental string `query:"estado"`
	RevisorID        string `query:"revisor"`
	ProyectoID       string `query:"proyecto"`
	PageRequest
}

// TrabajadorResponse trabajador con los tipos de documento adjuntos (sin contenido).
type TrabajadorResponse struct {
	ID                      string                  `json:"id"`
	Numero                  int                     `json:"numero"`
	Nombre                  string                  `json:"nombre"`
	Especialidad            string                  `json:"especialidad"`
	Edad                    int                     `json:"edad"`
	Rut                     string                  `json:"rut"`
	Ciudad                  string                  `json:"ciudad"`
	Nacionalidad            string                  `json:"nacionalidad"`
	Telefono                string                  `json:"telefono,omitempty"`
	FechaNacimiento         *time.Time              `json:"fechaNacimiento,omitempty"`
	EstadoDocumental        entity.EstadoDocumental `json:"estadoDocumental"`
	FechaRegistro           time.Time               `json:"fechaRegistro"`
	ProyectoAsignado        string                  `json:"proyectoAsignado,omitempty"`
	UltimoProyectoAsignado  string                  `json:"ultimoProyectoAsignado,omitempty"`
	Disponible              bool                    `json:"disponible"`
	UltimaAccion            string                  `json:"ultimaAccion,omitempty"`
	EstadoCliente           entity.EstadoCliente    `json:"estadoCliente,omitempty"`
	ProximoEscenario        entity.ProximoEscenario `json:"proximoEscenario,omitempty"`
	MotivoRechazo           string                  `json:"motivoRechazo,omitempty"`
	MotivoRechazoDocumental string                  `json:"motivoRechazoDocumental,omitempty"`
	RevisorAsignadoID       string                  `json:"revisorAsignadoId,omitempty"`
	Documentos              []string                `json:"documentos"`
	EsPrueba                bool                    `json:"esPrueba,omitempty"`
	Ocupacion               string                  `json:"ocupacion"`
}

// TrabajadorListResponse lista paginada de trabajadores.
type TrabajadorListResponse struct {
	Items []TrabajadorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ToTrabajadorResponse mapea la entidad a la salida HTTP.
func ToTrabajadorResponse(t entity.Trabajador) TrabajadorResponse {
	docs := make([]string, 0, len(t.Documentos))
	for k := range t.Documentos {
		docs = append(docs, k)
	}
	sort.Strings(docs)
	return TrabajadorResponse{
		ID:                      t.ID,
		Numero:                  t.Numero,
		Nombre:                  t.Nombre,
		Especialidad:            t.Especialidad,
		Edad:                    t.Edad,
		Rut:                     t.Rut,
		Ciudad:                  t.Ciudad,
		Nacionalidad:            t.Nacionalidad,
		Telefono:                t.Telefono,
		FechaNacimiento:         t.FechaNacimiento,
		EstadoDocumental:        t.EstadoDocumental,
		FechaRegistro:           t.FechaRegistro,
		ProyectoAsignado:        t.ProyectoAsignado,
		UltimoProyectoAsignado:  t.UltimoProyectoAsignado,
		Disponible:              t.Disponible,
		UltimaAccion:            t.UltimaAccion,
		EstadoCliente:           t.EstadoCliente,
		ProximoEscenario:        t.ProximoEscenario,
		MotivoRechazo:           t.MotivoRechazo,
		MotivoRechazoDocumental: t.MotivoRechazoDocumental,
		RevisorAsignadoID:       t.RevisorAsignadoID,
		Documentos:              docs,
		EsPrueba:                t.EsPrueba,
		Ocupacion:               reporting.Classify(t).String(),
	}
}

// ToTrabajadorResponses mapea una colección.
func ToTrabajadorResponses(ws []entity.Trabajador) []TrabajadorResponse {
	out := make([]TrabajadorResponse, 0, len(ws))
	for _, t := range ws {
		out = append(out, ToTrabajadorResponse(t))
	}
	return out
}
