package lifecycle

import (
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// TotalRequired suma de cantidades de los cargos.
func TotalRequired(puestos []entity.Puesto) int {
	total := 0
	for _, p := range puestos {
		total += p.Cantidad
	}
	return total
}

// ValidateProject valida un proyecto antes de guardarlo. Los borradores pueden estar
// incompletos: las reglas de turnos y de fechas solo aplican al publicar.
func ValidateProject(p entity.Proyecto) error {
	for _, pu := range p.Puestos {
		if pu.Cantidad < 1 {
			return fmt.Errorf("%w: la cantidad del cargo %q debe ser al menos 1", domain.ErrInvalidInput, pu.Tipo)
		}
	}
	switch p.Estado {
	case entity.ProyectoBorrador:
		return nil
	case entity.ProyectoPublicado:
	default:
		return fmt.Errorf("%w: estado de proyecto %q", domain.ErrInvalidInput, p.Estado)
	}

	for _, pu := range p.Puestos {
		enTurnos := 0
		for _, tu := range pu.Turnos {
			enTurnos += tu.Cantidad
		}
		if enTurnos != pu.Cantidad {
			return fmt.Errorf("%w: para el cargo %q hay %d asignados a turnos y se requieren %d",
				domain.ErrShiftMismatch, pu.Tipo, enTurnos, pu.Cantidad)
		}
	}
	if p.FechaInicioReclutamiento.IsZero() || p.FechaTerminoReclutamiento.IsZero() || p.FechaInicioTrabajo.IsZero() ||
		!p.FechaInicioReclutamiento.Before(p.FechaTerminoReclutamiento) ||
		!p.FechaTerminoReclutamiento.Before(p.FechaInicioTrabajo) {
		return domain.ErrDateOrder
	}
	return nil
}
