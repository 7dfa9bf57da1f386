package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

func proyecto(id string, cantidad int) entity.Proyecto {
	return entity.Proyecto{
		ID:                   id,
		Nombre:               "Proyecto " + id,
		CantidadTrabajadores: cantidad,
		Estado:               entity.ProyectoPublicado,
	}
}

func TestProjectCompletion_SinRequeridos(t *testing.T) {
	c := lifecycle.ProjectCompletion(proyecto("p1", 0), nil)
	assert.Equal(t, 0.0, c.ProgressPercent)
	assert.False(t, c.IsCompleted)
	assert.False(t, c.ShowCompletionPanel)
	assert.Equal(t, lifecycle.CompletionEnProceso, c.Status)
}

func TestProjectCompletion_ProgresoAcotado(t *testing.T) {
	p := proyecto("p1", 2)
	workers := []entity.Trabajador{
		enEtapa(t, "a", "p1", 3),
		enEtapa(t, "b", "p1", 3),
		enEtapa(t, "c", "p1", 3),
		enEtapa(t, "d", "p1", 1),
		enEtapa(t, "e", "otro", 3),
	}
	c := lifecycle.ProjectCompletion(p, workers)
	assert.Equal(t, 3, c.TotalApproved)
	assert.Equal(t, 100.0, c.ProgressPercent)
	assert.True(t, c.IsCompleted)
	assert.Equal(t, lifecycle.CompletionCompletado, c.Status)
}

func TestProjectCompletion_ContratacionIniciada(t *testing.T) {
	p := proyecto("p1", 4)
	workers := []entity.Trabajador{enEtapa(t, "a", "p1", 3), enEtapa(t, "b", "p1", 0)}
	workers, moved := lifecycle.RequestFolders(workers, []string{"a"}, "")
	require.Len(t, moved, 1)

	c := lifecycle.ProjectCompletion(p, workers)
	assert.Equal(t, 1, c.TotalApproved)
	assert.Equal(t, 1, c.FoldersRequested)
	assert.Equal(t, 25.0, c.ProgressPercent)
	assert.False(t, c.IsCompleted)
	assert.True(t, c.HasStartedContracting)
	assert.True(t, c.ShowCompletionPanel)
}

func TestProjectCompletion_EtapasPosterioresNoCuentan(t *testing.T) {
	p := proyecto("p1", 1)
	acreditando := enEtapa(t, "a", "p1", 3)
	acreditando.ProximoEscenario = entity.EscenarioAcreditacion
	contratado := enEtapa(t, "b", "p1", 3)
	contratado.ProximoEscenario = entity.EscenarioContratado

	c := lifecycle.ProjectCompletion(p, []entity.Trabajador{acreditando, contratado})
	assert.Equal(t, 0, c.TotalApproved)
	assert.Equal(t, 0, c.FoldersRequested)
	assert.Equal(t, 0.0, c.ProgressPercent)
	assert.False(t, c.IsCompleted)
	assert.False(t, c.HasStartedContracting)
	assert.False(t, c.ShowCompletionPanel)
	assert.Equal(t, lifecycle.CompletionEnProceso, c.Status)

	conCarpeta := enEtapa(t, "c", "p1", 3)
	conCarpeta.ProximoEscenario = entity.EscenarioCarpetaSolicitada
	c = lifecycle.ProjectCompletion(p, []entity.Trabajador{acreditando, contratado, conCarpeta})
	assert.Equal(t, 1, c.TotalApproved)
	assert.Equal(t, 1, c.FoldersRequested)
	assert.Equal(t, 100.0, c.ProgressPercent)
	assert.True(t, c.IsCompleted)
}

// Escenario completo: validar → asignar → avanzar hasta aprobado, dos veces.
func TestEscenario_ProyectoCompletado(t *testing.T) {
	p := proyecto("P", 2)

	w := nuevoTrabajador("W")
	w, err := lifecycle.ValidateDocuments(w)
	require.NoError(t, err)
	w, err = lifecycle.AssignToProject(w, p.ID)
	require.NoError(t, err)
	for w.ProximoEscenario != entity.EscenarioAprobadoParaContratar {
		w, err = lifecycle.AdvanceStage(w)
		require.NoError(t, err)
	}
	c := lifecycle.ProjectCompletion(p, []entity.Trabajador{w})
	assert.False(t, c.IsCompleted)

	segundo := enEtapa(t, "W2", p.ID, 3)
	c = lifecycle.ProjectCompletion(p, []entity.Trabajador{w, segundo})
	assert.True(t, c.IsCompleted)
	assert.True(t, c.ShowCompletionPanel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de proyectos
// ──────────────────────────────────────────────────────────────────────────────

func proyectoConPuestos(estado entity.EstadoProyecto) entity.Proyecto {
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	return entity.Proyecto{
		ID:     "p1",
		Estado: estado,
		Puestos: []entity.Puesto{{
			Tipo:     "Soldador",
			Cantidad: 3,
			Turnos: []entity.TurnoAsignado{
				{Nombre: "Día", Horario: "08:00 - 20:00", Cantidad: 2},
				{Nombre: "Noche", Horario: "20:00 - 08:00", Cantidad: 1},
			},
		}},
		FechaInicioReclutamiento:  base,
		FechaTerminoReclutamiento: base.AddDate(0, 0, 14),
		FechaInicioTrabajo:        base.AddDate(0, 1, 0),
	}
}

func TestValidateProject_PublicadoValido(t *testing.T) {
	p := proyectoConPuestos(entity.ProyectoPublicado)
	assert.NoError(t, lifecycle.ValidateProject(p))
	assert.Equal(t, 3, lifecycle.TotalRequired(p.Puestos))
}

func TestValidateProject_TurnosNoSuman(t *testing.T) {
	p := proyectoConPuestos(entity.ProyectoPublicado)
	p.Puestos[0].Turnos = p.Puestos[0].Turnos[:1]
	assert.ErrorIs(t, lifecycle.ValidateProject(p), domain.ErrShiftMismatch)

	p.Estado = entity.ProyectoBorrador
	assert.NoError(t, lifecycle.ValidateProject(p), "el borrador omite la validación de turnos")
}

func TestValidateProject_FechasFueraDeOrden(t *testing.T) {
	p := proyectoConPuestos(entity.ProyectoPublicado)
	p.FechaInicioTrabajo = p.FechaTerminoReclutamiento
	assert.ErrorIs(t, lifecycle.ValidateProject(p), domain.ErrDateOrder)

	p.Estado = entity.ProyectoBorrador
	assert.NoError(t, lifecycle.ValidateProject(p))
}
