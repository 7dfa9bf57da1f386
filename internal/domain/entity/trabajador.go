package entity

import "time"

// EstadoDocumental estado de la revisión de documentos del candidato.
type EstadoDocumental string

const (
	EstadoEnRevision          EstadoDocumental = "En revisión documental"
	EstadoValidado            EstadoDocumental = "Validado"
	EstadoAsignado            EstadoDocumental = "Asignado a proyecto"
	EstadoRechazadoDocumental EstadoDocumental = "Rechazado Documental"
)

// EstadoCliente decisión del cliente sobre un candidato asignado a su proyecto.
type EstadoCliente string

const (
	ClienteAprobado  EstadoCliente = "Aprobado por el cliente"
	ClienteRechazado EstadoCliente = "Rechazado por el cliente"
	ClientePendiente EstadoCliente = "Pendiente de acción"
)

// ProximoEscenario etapa del candidato en el proceso de contratación del cliente.
type ProximoEscenario string

const (
	EscenarioIngreso               ProximoEscenario = "Ingresos validados"
	EscenarioEntrevista            ProximoEscenario = "En entrevista"
	EscenarioEvaluacion            ProximoEscenario = "En evaluación"
	EscenarioAprobadoParaContratar ProximoEscenario = "Aprobado para Contratar"
	EscenarioCarpetaSolicitada     ProximoEscenario = "Carpeta Solicitada"
	EscenarioAcreditacion          ProximoEscenario = "A acreditar"
	EscenarioContratado            ProximoEscenario = "Contratado"
)

// Trabajador representa un candidato (trabajador industrial) y su estado en el proceso.
// Los campos opcionales usan el valor cero ("" o nil) como "sin definir".
type Trabajador struct {
	ID                      string            `json:"id"`
	Numero                  int               `json:"numero"`
	Nombre                  string            `json:"nombre"`
	Especialidad            string            `json:"especialidad"`
	Edad                    int               `json:"edad"`
	Rut                     string            `json:"rut"`
	Ciudad                  string            `json:"ciudad"`
	Nacionalidad            string            `json:"nacionalidad"`
	Telefono                string            `json:"telefono,omitempty"`
	FechaNacimiento         *time.Time        `json:"fechaNacimiento,omitempty"`
	EstadoDocumental        EstadoDocumental  `json:"estadoDocumental"`
	FechaRegistro           time.Time         `json:"fechaRegistro"`
	ProyectoAsignado        string            `json:"proyectoAsignado,omitempty"`
	UltimoProyectoAsignado  string            `json:"ultimoProyectoAsignado,omitempty"`
	Disponible              bool              `json:"disponible,omitempty"`
	UltimaAccion            string            `json:"ultimaAccion,omitempty"`
	EstadoCliente           EstadoCliente     `json:"estadoCliente,omitempty"`
	ProximoEscenario        ProximoEscenario  `json:"proximoEscenario,omitempty"`
	MotivoRechazo           string            `json:"motivoRechazo,omitempty"`
	MotivoRechazoDocumental string            `json:"motivoRechazoDocumental,omitempty"`
	RevisorAsignadoID       string            `json:"revisorAsignadoId,omitempty"`
	Documentos              map[string]string `json:"documentos,omitempty"`
	EsPrueba                bool              `json:"esPrueba,omitempty"`
}

// Clone devuelve una copia profunda (documentos y fecha de nacimiento incluidos).
func (t Trabajador) Clone() Trabajador {
	out := t
	if t.FechaNacimiento != nil {
		fn := *t.FechaNacimiento
		out.FechaNacimiento = &fn
	}
	if t.Documentos != nil {
		out.Documentos = make(map[string]string, len(t.Documentos))
		for k, v := range t.Documentos {
			out.Documentos[k] = v
		}
	}
	return out
}

// EnPoolLibre: validado y sin proyecto asignado.
func (t Trabajador) EnPoolLibre() bool {
	return t.EstadoDocumental == EstadoValidado && t.ProyectoAsignado == ""
}

// TrabajadorCredencial credenciales de acceso del portal del trabajador.
// El ID coincide con el del Trabajador; se crea antes que el perfil.
type TrabajadorCredencial struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
