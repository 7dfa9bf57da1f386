package lifecycle

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// ValidateDocuments En revisión → Validado. Limpia el motivo de rechazo documental.
func ValidateDocuments(t entity.Trabajador) (entity.Trabajador, error) {
	if t.EstadoDocumental != entity.EstadoEnRevision {
		return t, fmt.Errorf("%w: solo se valida un trabajador en revisión (estado actual: %s)",
			domain.ErrInvalidTransition, t.EstadoDocumental)
	}
	out := t.Clone()
	out.EstadoDocumental = entity.EstadoValidado
	out.MotivoRechazoDocumental = ""
	return out, nil
}

// RejectDocuments En revisión | Validado (sin proyecto) → Rechazado Documental.
// El motivo es obligatorio; no se asume un valor por defecto.
func RejectDocuments(t entity.Trabajador, reason string) (entity.Trabajador, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return t, domain.ErrReasonRequired
	}
	switch t.EstadoDocumental {
	case entity.EstadoEnRevision:
	case entity.EstadoValidado:
		if t.ProyectoAsignado != "" {
			return t, fmt.Errorf("%w: el trabajador está asignado al proyecto %s",
				domain.ErrInvalidTransition, t.ProyectoAsignado)
		}
	default:
		return t, fmt.Errorf("%w: no se puede rechazar documentalmente desde %s",
			domain.ErrInvalidTransition, t.EstadoDocumental)
	}
	out := t.Clone()
	out.EstadoDocumental = entity.EstadoRechazadoDocumental
	out.MotivoRechazoDocumental = reason
	return out, nil
}

// RequestRevalidation Rechazado Documental → En revisión, limpiando el motivo.
// Si el trabajador no está rechazado no hace nada.
func RequestRevalidation(t entity.Trabajador) entity.Trabajador {
	if t.EstadoDocumental != entity.EstadoRechazadoDocumental {
		return t
	}
	out := t.Clone()
	out.EstadoDocumental = entity.EstadoEnRevision
	out.MotivoRechazoDocumental = ""
	return out
}
