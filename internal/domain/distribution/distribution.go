// Package distribution reparte trabajadores en revisión documental entre revisores.
package distribution

import (
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Assignment par trabajador → revisor.
type Assignment struct {
	TrabajadorID string `json:"trabajadorId"`
	RevisorID    string `json:"revisorId"`
}

// Distribute fija RevisorAsignadoID a cada trabajador listado. Los demás quedan igual.
// No verifica que el revisor exista. Si un trabajador aparece dos veces gana la última entrada.
func Distribute(workers []entity.Trabajador, assignments []Assignment) ([]entity.Trabajador, int) {
	target := make(map[string]string, len(assignments))
	for _, a := range assignments {
		target[a.TrabajadorID] = a.RevisorID
	}
	out := make([]entity.Trabajador, len(workers))
	changed := 0
	for i, t := range workers {
		if rev, ok := target[t.ID]; ok {
			t = t.Clone()
			t.RevisorAsignadoID = rev
			changed++
		}
		out[i] = t
	}
	return out, changed
}

// AutoDistribute reparte round-robin los trabajadores entre los revisores en el orden
// recibido. Es determinista para entradas con el mismo orden.
func AutoDistribute(workers []entity.Trabajador, revisores []entity.Revisor) ([]Assignment, error) {
	if len(revisores) == 0 {
		return nil, domain.ErrNoReviewers
	}
	out := make([]Assignment, 0, len(workers))
	idx := 0
	for _, t := range workers {
		out = append(out, Assignment{TrabajadorID: t.ID, RevisorID: revisores[idx].ID})
		idx = (idx + 1) % len(revisores)
	}
	return out, nil
}

// Unassigned trabajadores en revisión sin revisor.
func Unassigned(workers []entity.Trabajador) []entity.Trabajador {
	var out []entity.Trabajador
	for _, t := range workers {
		if t.EstadoDocumental == entity.EstadoEnRevision && t.RevisorAsignadoID == "" {
			out = append(out, t)
		}
	}
	return out
}

// ReviewerLoad carga pendiente del revisor: solo cuenta trabajadores aún en revisión.
func ReviewerLoad(workers []entity.Trabajador, revisorID string) int {
	n := 0
	for _, t := range workers {
		if t.RevisorAsignadoID == revisorID && t.EstadoDocumental == entity.EstadoEnRevision {
			n++
		}
	}
	return n
}

// Load carga de un revisor para el panel de distribución.
type Load struct {
	RevisorID  string `json:"revisorId"`
	Nombre     string `json:"nombre"`
	Email      string `json:"email"`
	Pendientes int    `json:"pendientes"`
}

// Loads carga de cada revisor, en el orden de la colección.
func Loads(workers []entity.Trabajador, revisores []entity.Revisor) []Load {
	out := make([]Load, 0, len(revisores))
	for _, r := range revisores {
		out = append(out, Load{
			RevisorID:  r.ID,
			Nombre:     r.Nombre,
			Email:      r.Email,
			Pendientes: ReviewerLoad(workers, r.ID),
		})
	}
	return out
}

// ClearReviewer quita la referencia al revisor eliminado sin reasignar. Devuelve cuántos
// trabajadores cambiaron.
func ClearReviewer(workers []entity.Trabajador, revisorID string) ([]entity.Trabajador, int) {
	out := make([]entity.Trabajador, len(workers))
	n := 0
	for i, t := range workers {
		if revisorID != "" && t.RevisorAsignadoID == revisorID {
			t = t.Clone()
			t.RevisorAsignadoID = ""
			n++
		}
		out[i] = t
	}
	return out, n
}
