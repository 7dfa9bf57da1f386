package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 500 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MotivoRequest motivo de rechazo (documental o de etapa).
type MotivoRequest struct {
	Motivo string `json:"motivo"`
}

// IDsRequest lista de ids para operaciones masivas.
type IDsRequest struct {
	IDs  []string `json:"ids"`
	Nota string   `json:"nota,omitempty"`
}

// BulkResponse resultado de una operación masiva: ids afectados y omitidos.
type BulkResponse struct {
	Actualizados []string `json:"actualizados"`
	Omitidos     []string `json:"omitidos"`
}
