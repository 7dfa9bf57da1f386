package reporting_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/reporting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de fecha
// ──────────────────────────────────────────────────────────────────────────────

// Miércoles 12 de marzo de 2025.
var now = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestRangeBounds_SemanaComienzaLunes(t *testing.T) {
	from, to, ok := reporting.RangeThisWeek.Bounds(now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), to)

	from, to, _ = reporting.RangeLastWeek.Bounds(now)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), to)

	from, to, _ = reporting.RangeLast4Weeks.Bounds(now)
	assert.Equal(t, time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), to)

	_, _, ok = reporting.RangeAll.Bounds(now)
	assert.False(t, ok)
}

func TestRangeBounds_Domingo(t *testing.T) {
	domingo := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	from, _, _ := reporting.RangeThisWeek.Bounds(domingo)
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Equal(t, 10, from.Day())
}

func TestParseRange(t *testing.T) {
	r, err := reporting.ParseRange("")
	require.NoError(t, err)
	assert.Equal(t, reporting.RangeAll, r)

	r, err = reporting.ParseRange("last_week")
	require.NoError(t, err)
	assert.Equal(t, reporting.RangeLastWeek, r)

	_, err = reporting.ParseRange("ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilterByRegistration(t *testing.T) {
	ws := []entity.Trabajador{
		{ID: "hoy", FechaRegistro: now},
		{ID: "lunes", FechaRegistro: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "semana-pasada", FechaRegistro: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "hace-un-mes", FechaRegistro: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "sin-fecha"},
	}
	ids := func(ws []entity.Trabajador) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}
	assert.Equal(t, []string{"hoy", "lunes"}, ids(reporting.FilterByRegistration(ws, reporting.RangeThisWeek, now)))
	assert.Equal(t, []string{"semana-pasada"}, ids(reporting.FilterByRegistration(ws, reporting.RangeLastWeek, now)))
	assert.Equal(t, []string{"hoy", "lunes", "semana-pasada"}, ids(reporting.FilterByRegistration(ws, reporting.RangeLast4Weeks, now)))
	assert.Len(t, reporting.FilterByRegistration(ws, reporting.RangeAll, now), 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ocupación
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   entity.Trabajador
		want reporting.Occupancy
	}{
		{"contratado", entity.Trabajador{ProyectoAsignado: "p", ProximoEscenario: entity.EscenarioContratado, EstadoDocumental: entity.EstadoValidado}, reporting.Ocupado},
		{"pool libre", entity.Trabajador{EstadoDocumental: entity.EstadoValidado}, reporting.Libre},
		{"rechazado por cliente", entity.Trabajador{EstadoDocumental: entity.EstadoValidado, EstadoCliente: entity.ClienteRechazado}, reporting.Libre},
		{"en revisión", entity.Trabajador{EstadoDocumental: entity.EstadoEnRevision}, reporting.EnProceso},
		{"en entrevista", entity.Trabajador{EstadoDocumental: entity.EstadoValidado, ProyectoAsignado: "p", ProximoEscenario: entity.EscenarioEntrevista}, reporting.EnProceso},
		{"rechazado documental", entity.Trabajador{EstadoDocumental: entity.EstadoRechazadoDocumental}, reporting.EnProceso},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reporting.Classify(tc.in))
		})
	}
}

func TestCountOccupancy_Particion(t *testing.T) {
	assert.Equal(t, reporting.OccupancyStats{}, reporting.CountOccupancy(nil))

	estados := []entity.EstadoDocumental{entity.EstadoEnRevision, entity.EstadoValidado, entity.EstadoAsignado, entity.EstadoRechazadoDocumental}
	clientes := []entity.EstadoCliente{"", entity.ClienteAprobado, entity.ClienteRechazado, entity.ClientePendiente}
	escenarios := []entity.ProximoEscenario{"", entity.EscenarioIngreso, entity.EscenarioAprobadoParaContratar, entity.EscenarioContratado}
	var ws []entity.Trabajador
	for _, e := range estados {
		for _, c := range clientes {
			for _, s := range escenarios {
				for _, p := range []string{"", "p1"} {
					ws = append(ws, entity.Trabajador{EstadoDocumental: e, EstadoCliente: c, ProximoEscenario: s, ProyectoAsignado: p})
				}
			}
		}
	}
	s := reporting.CountOccupancy(ws)
	assert.Equal(t, len(ws), s.Total)
	assert.Equal(t, s.Total, s.Libres+s.Ocupados+s.EnProceso)
}

// ──────────────────────────────────────────────────────────────────────────────
// Histogramas
// ──────────────────────────────────────────────────────────────────────────────

func TestCount_IgnoraVacios(t *testing.T) {
	ws := []entity.Trabajador{
		{Ciudad: "Antofagasta"}, {Ciudad: "Calama"}, {Ciudad: "Antofagasta"}, {Ciudad: ""},
	}
	got := reporting.Count(ws, reporting.ByCiudad)
	assert.Equal(t, []reporting.Bucket{{Name: "Antofagasta", Value: 2}, {Name: "Calama", Value: 1}}, got)
}

func TestTopN_QuinceCategorias(t *testing.T) {
	var buckets []reporting.Bucket
	for i := 1; i <= 15; i++ {
		buckets = append(buckets, reporting.Bucket{Name: fmt.Sprintf("esp-%02d", i), Value: i})
	}
	got := reporting.TopN(buckets, reporting.DefaultTopN)
	require.Len(t, got, 11)
	assert.Equal(t, "esp-15", got[0].Name)
	assert.Equal(t, reporting.OthersBucket, got[10].Name)
	assert.Equal(t, 1+2+3+4+5, got[10].Value)
}

func TestTopN_SinExcedente(t *testing.T) {
	buckets := []reporting.Bucket{{Name: "a", Value: 3}, {Name: "b", Value: 1}}
	assert.Equal(t, buckets, reporting.TopN(buckets, 10))

	ceros := []reporting.Bucket{{Name: "a", Value: 2}, {Name: "b", Value: 0}}
	assert.Equal(t, ceros[:1], reporting.TopN(ceros, 1), "sin 'Otros' si el resto suma cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Kanban y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func asignado(t *testing.T, id, proyecto string, avances int) entity.Trabajador {
	t.Helper()
	w := entity.Trabajador{ID: id, Nombre: "Trabajador " + id, EstadoDocumental: entity.EstadoValidado}
	w, err := lifecycle.AssignToProject(w, proyecto)
	require.NoError(t, err)
	for i := 0; i < avances; i++ {
		w, err = lifecycle.AdvanceStage(w)
		require.NoError(t, err)
	}
	return w
}

func TestProjectBoard_RechazadoSaleDelKanban(t *testing.T) {
	p := entity.Proyecto{ID: "P", CantidadTrabajadores: 3}
	rechazado, err := lifecycle.RejectAtStage(asignado(t, "r", "P", 2), "No asistió a exámenes")
	require.NoError(t, err)
	ws := []entity.Trabajador{
		asignado(t, "a", "P", 0),
		asignado(t, "b", "P", 3),
		rechazado,
		asignado(t, "otro", "Q", 1),
	}

	b := reporting.ProjectBoard(p, ws, "")
	require.Len(t, b.Columnas, len(reporting.BoardColumns))
	assert.Len(t, b.Columnas[0].Trabajadores, 1)
	assert.Empty(t, b.Columnas[1].Trabajadores)
	assert.Empty(t, b.Columnas[2].Trabajadores)
	assert.Len(t, b.Columnas[3].Trabajadores, 1)
	require.Len(t, b.Rechazados, 1)
	assert.Equal(t, "r", b.Rechazados[0].ID)
	assert.Equal(t, "No asistió a exámenes", b.Rechazados[0].MotivoRechazo)
	assert.Equal(t, 1, b.Completion.TotalApproved)

	// Reasignado a Q: deja el historial de P.
	reasignado, err := lifecycle.AssignToProject(rechazado, "Q")
	require.NoError(t, err)
	ws[2] = reasignado
	assert.Empty(t, reporting.ProjectBoard(p, ws, "").Rechazados)
}

func TestRejected_Consolidado(t *testing.T) {
	ws := []entity.Trabajador{
		{Nombre: "Zoe", EstadoDocumental: entity.EstadoRechazadoDocumental},
		{Nombre: "Ana", EstadoDocumental: entity.EstadoValidado, EstadoCliente: entity.ClienteRechazado},
		{Nombre: "Luis", EstadoDocumental: entity.EstadoValidado},
	}
	got := reporting.Rejected(ws)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Nombre)
	assert.Equal(t, "Zoe", got[1].Nombre)
}

func TestMatchesSearch_SinTildes(t *testing.T) {
	w := entity.Trabajador{Nombre: "José Muñoz", Rut: "12.345.678-9", Especialidad: "Electricista"}
	assert.True(t, reporting.MatchesSearch(w, "jose"))
	assert.True(t, reporting.MatchesSearch(w, "MUNOZ"))
	assert.True(t, reporting.MatchesSearch(w, "345.678"))
	assert.True(t, reporting.MatchesSearch(w, "eléctr"))
	assert.True(t, reporting.MatchesSearch(w, "  "))
	assert.False(t, reporting.MatchesSearch(w, "soldador"))
}
