package lifecycle

import (
	"math"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Estados del panel de completitud.
const (
	CompletionEnProceso  = "En Proceso"
	CompletionCompletado = "Completado"
)

// Completion métricas de contratación de un proyecto. Se deriva en cada lectura y nunca
// se persiste.
type Completion struct {
	Status                string  `json:"status"`
	TotalRequired         int     `json:"totalRequired"`
	TotalApproved         int     `json:"totalApproved"`
	FoldersRequested      int     `json:"foldersRequested"`
	ProgressPercent       float64 `json:"progressPercent"`
	IsCompleted           bool    `json:"isCompleted"`
	HasStartedContracting bool    `json:"hasStartedContracting"`
	ShowCompletionPanel   bool    `json:"showCompletionPanel"`
}

// ProjectCompletion calcula el estado de completitud del proyecto a partir de los
// trabajadores asignados a él. Solo cuentan Aprobado para Contratar y Carpeta Solicitada;
// Acreditación y Contratado no afectan el panel.
func ProjectCompletion(p entity.Proyecto, workers []entity.Trabajador) Completion {
	approved, folders := 0, 0
	for _, t := range workers {
		if t.ProyectoAsignado != p.ID {
			continue
		}
		switch t.ProximoEscenario {
		case entity.EscenarioAprobadoParaContratar:
			approved++
		case entity.EscenarioCarpetaSolicitada:
			approved++
			folders++
		}
	}
	required := p.CantidadTrabajadores
	c := Completion{
		Status:                CompletionEnProceso,
		TotalRequired:         required,
		TotalApproved:         approved,
		FoldersRequested:      folders,
		IsCompleted:           required > 0 && approved >= required,
		HasStartedContracting: folders > 0,
	}
	if required > 0 {
		c.ProgressPercent = math.Min(100, float64(approved)/float64(required)*100)
	}
	if c.IsCompleted {
		c.Status = CompletionCompletado
	}
	c.ShowCompletionPanel = c.IsCompleted || c.HasStartedContracting
	return c
}
