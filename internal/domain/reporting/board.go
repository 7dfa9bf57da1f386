package reporting

import (
	"sort"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

// BoardColumns etapas visibles en el kanban del proyecto, en orden.
var BoardColumns = []entity.ProximoEscenario{
	entity.EscenarioIngreso,
	entity.EscenarioEntrevista,
	entity.EscenarioEvaluacion,
	entity.EscenarioAprobadoParaContratar,
	entity.EscenarioCarpetaSolicitada,
}

// Column una columna del kanban.
type Column struct {
	Etapa        entity.ProximoEscenario `json:"etapa"`
	Motivos      []string                `json:"motivosRechazo,omitempty"`
	Trabajadores []entity.Trabajador     `json:"trabajadores"`
}

// Board vista del proyecto para el cliente o el revisor.
type Board struct {
	Proyecto   entity.Proyecto      `json:"proyecto"`
	Columnas   []Column             `json:"columnas"`
	Rechazados []entity.Trabajador  `json:"rechazados"`
	Completion lifecycle.Completion `json:"completitud"`
}

// ProjectBoard arma el kanban. Los rechazados del proyecto salen de las columnas activas
// y quedan en el historial (último proyecto == P y rechazado por el cliente).
func ProjectBoard(p entity.Proyecto, workers []entity.Trabajador, search string) Board {
	b := Board{
		Proyecto:   p,
		Columnas:   make([]Column, len(BoardColumns)),
		Completion: lifecycle.ProjectCompletion(p, workers),
	}
	pos := make(map[entity.ProximoEscenario]int, len(BoardColumns))
	for i, e := range BoardColumns {
		pos[e] = i
		b.Columnas[i] = Column{Etapa: e, Motivos: lifecycle.RejectionReasons(e), Trabajadores: []entity.Trabajador{}}
	}
	b.Rechazados = []entity.Trabajador{}
	for _, t := range workers {
		if !MatchesSearch(t, search) {
			continue
		}
		if t.ProyectoAsignado == p.ID {
			if i, ok := pos[t.ProximoEscenario]; ok {
				b.Columnas[i].Trabajadores = append(b.Columnas[i].Trabajadores, t)
			}
			continue
		}
		if t.UltimoProyectoAsignado == p.ID && t.EstadoCliente == entity.ClienteRechazado {
			b.Rechazados = append(b.Rechazados, t)
		}
	}
	return b
}

// Rejected listado consolidado: rechazo documental o rechazo del cliente, por nombre.
func Rejected(workers []entity.Trabajador) []entity.Trabajador {
	out := []entity.Trabajador{}
	for _, t := range workers {
		if t.EstadoDocumental == entity.EstadoRechazadoDocumental || t.EstadoCliente == entity.ClienteRechazado {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out
}
