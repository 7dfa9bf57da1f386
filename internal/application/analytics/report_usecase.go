package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// ReportUseCase genera el reporte de contratación de un proyecto.
type ReportUseCase struct {
	store    *store.Store
	renderer ReportRenderer
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(st *store.Store, renderer ReportRenderer) *ReportUseCase {
	return &ReportUseCase{store: st, renderer: renderer, now: time.Now}
}

// BuildProjectReport reúne los datos del reporte sin dibujarlo.
func (uc *ReportUseCase) BuildProjectReport(a auth.Actor, proyectoID string) (*ProjectReport, error) {
	var out *ProjectReport
	err := uc.store.View(func(s *entity.Snapshot) error {
		p, err := visibleProject(s, a, proyectoID)
		if err != nil {
			return err
		}
		r := &ProjectReport{
			Proyecto:      p.Clone(),
			ClienteNombre: clienteNombre(s, p.ClienteID),
			Completion:    lifecycle.ProjectCompletion(p, s.Trabajadores),
			GeneradoEn:    uc.now(),
		}
		for _, t := range s.Trabajadores {
			if t.ProyectoAsignado != p.ID {
				continue
			}
			switch t.ProximoEscenario {
			case entity.EscenarioAprobadoParaContratar:
				r.Aprobados = append(r.Aprobados, t.Clone())
			case entity.EscenarioCarpetaSolicitada, entity.EscenarioAcreditacion, entity.EscenarioContratado:
				r.EnContratacion = append(r.EnContratacion, t.Clone())
			}
		}
		out = r
		return nil
	})
	return out, err
}

// ProjectReportPDF dibuja el reporte y devuelve los bytes y el nombre del archivo.
func (uc *ReportUseCase) ProjectReportPDF(ctx context.Context, a auth.Actor, proyectoID string) ([]byte, string, error) {
	r, err := uc.BuildProjectReport(a, proyectoID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.renderer.RenderProjectReport(ctx, *r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	name := fmt.Sprintf("reporte_%s_%s.pdf", slug(r.Proyecto.Nombre), r.GeneradoEn.Format("2006-01-02"))
	return pdf, name, nil
}

// slug nombre apto para archivo: minúsculas, espacios como guion bajo, solo ASCII alfanumérico.
func slug(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "proyecto"
	}
	return b.String()
}
