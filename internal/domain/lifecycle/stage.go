package lifecycle

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Nota de última acción para la solicitud masiva de carpetas.
const NotaCarpetaSolicitada = "Carpeta de contratación solicitada por cliente."

// NextStage sucesor de una etapa al aprobar un candidato desde el tablero del cliente.
// Desde Aprobado para Contratar en adelante no hay sucesor: esas etapas avanzan con
// RequestFolders y AdvanceContracting.
func NextStage(e entity.ProximoEscenario) (entity.ProximoEscenario, bool) {
	switch e {
	case entity.EscenarioIngreso:
		return entity.EscenarioEntrevista, true
	case entity.EscenarioEntrevista:
		return entity.EscenarioEvaluacion, true
	case entity.EscenarioEvaluacion:
		return entity.EscenarioAprobadoParaContratar, true
	case entity.EscenarioAprobadoParaContratar,
		entity.EscenarioCarpetaSolicitada,
		entity.EscenarioAcreditacion,
		entity.EscenarioContratado:
		return "", false
	default:
		return "", false
	}
}

// RejectionReasons causales sugeridas por etapa. Solo orientan a la interfaz:
// cualquier motivo no vacío es aceptado.
func RejectionReasons(e entity.ProximoEscenario) []string {
	switch e {
	case entity.EscenarioIngreso:
		return []string{"No cumple perfil", "Documentación insuficiente", "Contacto no exitoso"}
	case entity.EscenarioEntrevista:
		return []string{"No asistió a entrevista", "Rechazado en entrevista técnica", "Rechazado en entrevista psicológica"}
	case entity.EscenarioEvaluacion:
		return []string{"No asistió a exámenes", "Rechazado por exámenes médicos", "Rechazado por test de drogas"}
	case entity.EscenarioAprobadoParaContratar,
		entity.EscenarioCarpetaSolicitada,
		entity.EscenarioAcreditacion,
		entity.EscenarioContratado:
		return nil
	default:
		return nil
	}
}

// Rejectable informa si desde la etapa se puede rechazar al candidato.
func Rejectable(e entity.ProximoEscenario) bool {
	return len(RejectionReasons(e)) > 0
}

// AssignToProject asigna un trabajador validado y libre a un proyecto.
// Falla sin modificar el trabajador si no está validado o ya tiene proyecto.
func AssignToProject(t entity.Trabajador, projectID string) (entity.Trabajador, error) {
	if strings.TrimSpace(projectID) == "" {
		return t, fmt.Errorf("%w: proyecto requerido", domain.ErrInvalidInput)
	}
	if t.EstadoDocumental != entity.EstadoValidado {
		return t, fmt.Errorf("%w (estado actual: %s)", domain.ErrNotValidated, t.EstadoDocumental)
	}
	if t.ProyectoAsignado != "" {
		return t, fmt.Errorf("%w: %s", domain.ErrAlreadyAssigned, t.ProyectoAsignado)
	}
	out := t.Clone()
	out.ProyectoAsignado = projectID
	out.Disponible = false
	out.EstadoCliente = entity.ClientePendiente
	out.ProximoEscenario = entity.EscenarioIngreso
	out.UltimaAccion = ""
	return out, nil
}

// AdvanceStage aprueba al candidato en su etapa actual y lo mueve a la siguiente.
func AdvanceStage(t entity.Trabajador) (entity.Trabajador, error) {
	if t.ProyectoAsignado == "" {
		return t, fmt.Errorf("%w: el trabajador no está asignado a un proyecto", domain.ErrPrecondition)
	}
	next, ok := NextStage(t.ProximoEscenario)
	if !ok {
		return t, fmt.Errorf("%w: la etapa %q no tiene sucesor directo",
			domain.ErrInvalidTransition, t.ProximoEscenario)
	}
	out := t.Clone()
	out.ProximoEscenario = next
	if next == entity.EscenarioAprobadoParaContratar {
		out.EstadoCliente = entity.ClienteAprobado
	} else {
		out.EstadoCliente = entity.ClientePendiente
	}
	out.UltimaAccion = "Avanzado a: " + string(next)
	out.MotivoRechazo = ""
	return out, nil
}

// RejectAtStage rechaza al candidato en Ingreso, Entrevista o Evaluación y lo
// devuelve al pool libre, conservando el proyecto en UltimoProyectoAsignado.
func RejectAtStage(t entity.Trabajador, reason string) (entity.Trabajador, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return t, domain.ErrReasonRequired
	}
	if t.ProyectoAsignado == "" || !Rejectable(t.ProximoEscenario) {
		return t, fmt.Errorf("%w: no se puede rechazar en la etapa %q",
			domain.ErrInvalidTransition, t.ProximoEscenario)
	}
	out := t.Clone()
	out.EstadoCliente = entity.ClienteRechazado
	out.MotivoRechazo = reason
	out.Disponible = true
	out.UltimoProyectoAsignado = t.ProyectoAsignado
	out.ProyectoAsignado = ""
	out.ProximoEscenario = ""
	out.UltimaAccion = "Rechazado. Motivo: " + reason
	return out, nil
}

// RequestFolders mueve a Carpeta Solicitada a los trabajadores de ids que estén en
// Aprobado para Contratar. Los ids en otra etapa (o inexistentes) se omiten sin error.
// Devuelve la colección actualizada y los ids efectivamente movidos, en orden de colección.
func RequestFolders(workers []entity.Trabajador, ids []string, note string) ([]entity.Trabajador, []string) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	if note == "" {
		note = NotaCarpetaSolicitada
	}
	out := make([]entity.Trabajador, len(workers))
	var moved []string
	for i, t := range workers {
		if _, ok := want[t.ID]; ok && t.ProximoEscenario == entity.EscenarioAprobadoParaContratar {
			t = t.Clone()
			t.ProximoEscenario = entity.EscenarioCarpetaSolicitada
			t.UltimaAccion = note
			moved = append(moved, t.ID)
		}
		out[i] = t
	}
	return out, moved
}

// AdvanceContracting cierra la contratación: Carpeta Solicitada → A acreditar → Contratado.
func AdvanceContracting(t entity.Trabajador) (entity.Trabajador, error) {
	var next entity.ProximoEscenario
	switch t.ProximoEscenario {
	case entity.EscenarioCarpetaSolicitada:
		next = entity.EscenarioAcreditacion
	case entity.EscenarioAcreditacion:
		next = entity.EscenarioContratado
	default:
		return t, fmt.Errorf("%w: la etapa %q no está en contratación",
			domain.ErrInvalidTransition, t.ProximoEscenario)
	}
	out := t.Clone()
	out.ProximoEscenario = next
	out.EstadoCliente = entity.ClienteAprobado
	out.Disponible = false
	out.UltimaAccion = "Avanzado a: " + string(next)
	return out, nil
}

// CheckInvariants verifica que EstadoCliente y ProximoEscenario estén ambos definidos
// (y con proyecto) o ambos vacíos. Un rechazo por cliente conserva EstadoCliente sin etapa.
func CheckInvariants(t entity.Trabajador) error {
	hasEstado := t.EstadoCliente != "" && t.EstadoCliente != entity.ClienteRechazado
	hasEtapa := t.ProximoEscenario != ""
	if hasEstado != hasEtapa {
		return fmt.Errorf("%w: estado cliente %q y etapa %q inconsistentes",
			domain.ErrConflict, t.EstadoCliente, t.ProximoEscenario)
	}
	if hasEtapa && t.ProyectoAsignado == "" {
		return fmt.Errorf("%w: etapa %q sin proyecto asignado", domain.ErrConflict, t.ProximoEscenario)
	}
	return nil
}
