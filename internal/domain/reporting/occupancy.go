package reporting

import "github.com/jhoicas/Reclutamiento-api/internal/domain/entity"

// Occupancy clasificación excluyente de un trabajador para los KPI.
type Occupancy int

const (
	EnProceso Occupancy = iota
	Libre
	Ocupado
)

func (o Occupancy) String() string {
	switch o {
	case Libre:
		return "libre"
	case Ocupado:
		return "ocupado"
	default:
		return "en_proceso"
	}
}

// Classify contratado tiene prioridad sobre libre; el resto está en proceso.
func Classify(t entity.Trabajador) Occupancy {
	switch {
	case t.ProximoEscenario == entity.EscenarioContratado:
		return Ocupado
	case t.EstadoCliente == entity.ClienteRechazado || t.EnPoolLibre():
		return Libre
	default:
		return EnProceso
	}
}

// OccupancyStats totales por clasificación. Libres+Ocupados+EnProceso == Total.
type OccupancyStats struct {
	Libres    int `json:"libres"`
	Ocupados  int `json:"ocupados"`
	EnProceso int `json:"enProceso"`
	Total     int `json:"total"`
}

func CountOccupancy(workers []entity.Trabajador) OccupancyStats {
	var s OccupancyStats
	for _, t := range workers {
		switch Classify(t) {
		case Ocupado:
			s.Ocupados++
		case Libre:
			s.Libres++
		default:
			s.EnProceso++
		}
	}
	s.Total = len(workers)
	return s
}
