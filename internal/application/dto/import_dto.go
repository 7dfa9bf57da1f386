package dto

import "github.com/jhoicas/Reclutamiento-api/internal/domain/bulkimport"

// ImportRequest registros ya parseados de la carga masiva.
type ImportRequest struct {
	Registros []bulkimport.Record `json:"registros"`
}

// ImportResponse trabajadores creados y registros descartados.
type ImportResponse struct {
	Importados []TrabajadorResponse   `json:"importados"`
	Rechazados []bulkimport.Rejection `json:"rechazados"`
}

// LogoRequest logo de la plataforma (URL o data URL). Vacío lo elimina.
type LogoRequest struct {
	Logo string `json:"logo"`
}
