package dto

import (
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// AdminDashboardResponse respuesta de GET /api/admin/dashboard.
type AdminDashboardResponse struct {
	Rango                reporting.Range          `json:"rango"`
	KPIs                 reporting.OccupancyStats `json:"kpis"`
	RegistradosEnPeriodo int                      `json:"registradosEnPeriodo"`
	Especialidades       []reporting.Bucket       `json:"especialidades"`
	Ciudades             []reporting.Bucket       `json:"ciudades"`
	Nacionalidades       []reporting.Bucket       `json:"nacionalidades"`
	EstadosDocumentales  []reporting.Bucket       `json:"estadosDocumentales"`
	ClientesActivos      int                      `json:"clientesActivos"`
	ProyectosActivos     int                      `json:"proyectosActivos"`
	EstadoProyectos      []ProyectoEstadoRow      `json:"estadoProyectos"`
}

// ProyectoEstadoRow fila de la tabla de estado de proyectos publicados.
type ProyectoEstadoRow struct {
	ProyectoID       string  `json:"proyectoId"`
	Nombre           string  `json:"nombre"`
	Cliente          string  `json:"cliente"`
	Requeridos       int     `json:"requeridos"`
	AprobadosCliente int     `json:"aprobadosCliente"`
	Progreso         float64 `json:"progreso"`
	Estado           string  `json:"estado"`
}

// RevisorDashboardResponse contadores del revisor.
type RevisorDashboardResponse struct {
	EnRevision        int `json:"enRevision"`
	AsignadosAMi      int `json:"asignadosAMi"`
	Validados         int `json:"validados"`
	RechazadosDoc     int `json:"rechazadosDocumental"`
	PoolLibre         int `json:"poolLibre"`
	ProyectosAbiertos int `json:"proyectosAbiertos"`
	RechazadosCliente int `json:"rechazadosCliente"`
}

// ProyectoResumen tarjeta de proyecto en el tablero del usuario de cliente.
type ProyectoResumen struct {
	ID          string               `json:"id"`
	Nombre      string               `json:"nombre"`
	Ciudad      string               `json:"ciudad"`
	Candidatos  int                  `json:"candidatos"`
	Completitud lifecycle.Completion `json:"completitud"`
}

// UsuarioDashboardResponse tablero del usuario de cliente.
type UsuarioDashboardResponse struct {
	ClienteID     string            `json:"clienteId"`
	ClienteNombre string            `json:"clienteNombre"`
	Proyectos     []ProyectoResumen `json:"proyectos"`
}

// BoardResponse kanban de un proyecto.
type BoardResponse struct {
	Proyecto   ProyectoResponse     `json:"proyecto"`
	Columnas   []ColumnResponse     `json:"columnas"`
	Rechazados []TrabajadorResponse `json:"rechazados"`
}

// ColumnResponse columna del kanban.
type ColumnResponse struct {
	Etapa        string               `json:"etapa"`
	Motivos      []string             `json:"motivosRechazo,omitempty"`
	Trabajadores []TrabajadorResponse `json:"trabajadores"`
}

// PortalResponse vista del propio trabajador.
type PortalResponse struct {
	Trabajador      TrabajadorResponse `json:"trabajador"`
	Email           string             `json:"email"`
	ProyectoNombre  string             `json:"proyectoNombre,omitempty"`
	PerfilCompleto  bool               `json:"perfilCompleto"`
	DocumentosFalta []string           `json:"documentosFaltantes"`
}
