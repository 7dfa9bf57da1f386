package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// ProjectReport datos del reporte de contratación de un proyecto.
type ProjectReport struct {
	Proyecto      entity.Proyecto
	ClienteNombre string
	Completion    lifecycle.Completion
	// Aprobados candidatos en "Aprobado para Contratar".
	Aprobados []entity.Trabajador
	// EnContratacion candidatos con carpeta solicitada o posteriores.
	EnContratacion []entity.Trabajador
	GeneradoEn     time.Time
}

// ReportRenderer puerto de salida que dibuja el reporte (PDF).
type ReportRenderer interface {
	RenderProjectReport(ctx context.Context, r ProjectReport) ([]byte, error)
}
