package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

var (
	admin    = auth.Actor{ID: "admin-1", Role: entity.RolAdmin}
	revisor  = auth.Actor{ID: "rev-1", Role: entity.RolRevisor}
	usuario1 = auth.Actor{ID: "user-1", Role: entity.RolUsuario, ClienteID: "cli-1"}
	usuario2 = auth.Actor{ID: "user-2", Role: entity.RolUsuario, ClienteID: "cli-2"}
)

// fixture pro-1 (cli-1, 2 cupos) tiene un trabajador en entrevista, uno aprobado, uno
// contratado y uno rechazado por el cliente. pro-2 es borrador; pro-3 apunta a un cliente
// inexistente.
func fixture() *entity.Snapshot {
	reg := time.Now()
	w := func(id, nombre, esp string) entity.Trabajador {
		return entity.Trabajador{ID: id, Nombre: nombre, Especialidad: esp, Ciudad: "Calama", FechaRegistro: reg}
	}
	w1 := w("w1", "Ana", "Soldador")
	w1.EstadoDocumental, w1.ProyectoAsignado, w1.ProximoEscenario = entity.EstadoAsignado, "pro-1", entity.EscenarioEntrevista
	w2 := w("w2", "Beto", "Soldador")
	w2.EstadoDocumental, w2.ProyectoAsignado, w2.ProximoEscenario = entity.EstadoAsignado, "pro-1", entity.EscenarioAprobadoParaContratar
	w2.EstadoCliente = entity.ClienteAprobado
	w3 := w("w3", "Carla", "Eléctrico")
	w3.EstadoDocumental, w3.UltimoProyectoAsignado, w3.EstadoCliente = entity.EstadoValidado, "pro-1", entity.ClienteRechazado
	w3.MotivoRechazo = "No se presenta a la entrevista"
	w4 := w("w4", "Dario", "Mecánico")
	w4.EstadoDocumental, w4.RevisorAsignadoID = entity.EstadoEnRevision, "rev-1"
	w5 := w("w5", "Elisa", "Mecánico")
	w5.EstadoDocumental = entity.EstadoEnRevision
	w6 := w("w6", "Bruno", "Rigger")
	w6.EstadoDocumental, w6.MotivoRechazoDocumental = entity.EstadoRechazadoDocumental, "cédula vencida"
	w7 := w("w7", "Gabi", "Soldador")
	w7.EstadoDocumental, w7.ProyectoAsignado, w7.ProximoEscenario = entity.EstadoAsignado, "pro-1", entity.EscenarioContratado
	w8 := w("w8", "Hugo", "Rigger")
	w8.EstadoDocumental = entity.EstadoValidado

	return &entity.Snapshot{
		Clientes: []entity.Cliente{
			{ID: "cli-1", Nombre: "Minera Norte", ProyectosActivos: []string{"pro-1", "pro-2"}},
			{ID: "cli-2", Nombre: "Forestal Sur"},
		},
		Proyectos: []entity.Proyecto{
			{ID: "pro-1", Nombre: "Parada de Planta", ClienteID: "cli-1", Ciudad: "Calama", CantidadTrabajadores: 2, Estado: entity.ProyectoPublicado},
			{ID: "pro-2", Nombre: "Borrador", ClienteID: "cli-1", Estado: entity.ProyectoBorrador},
			{ID: "pro-3", Nombre: "Huérfano", ClienteID: "cli-9", CantidadTrabajadores: 1, Estado: entity.ProyectoPublicado},
		},
		Revisores:    []entity.Revisor{{ID: "rev-1", Nombre: "Rita"}},
		Trabajadores: []entity.Trabajador{w1, w2, w3, w4, w5, w6, w7, w8},
	}
}

func newStore(t *testing.T, snap *entity.Snapshot) *store.Store {
	t.Helper()
	st := store.New(memory.NewSnapshotRepository(), snap, logger.Nop())
	require.NoError(t, st.Load(context.Background()))
	return st
}

func ids(items []dto.TrabajadorResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
