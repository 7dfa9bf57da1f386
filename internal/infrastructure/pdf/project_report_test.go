package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/lifecycle"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"950":      "950",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1500000": "-1.500.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestRenderProjectReport_GeneraPDF(t *testing.T) {
	r := analytics.ProjectReport{
		Proyecto: entity.Proyecto{
			ID:     "pro-1",
			Nombre: "Parada de planta",
			Ciudad: "Antofagasta",
			Puestos: []entity.Puesto{
				{Tipo: "Soldador", Categoria: entity.CategoriaTecnico, Cantidad: 2, Sueldo: decimal.NewFromInt(950000)},
			},
		},
		ClienteNombre: "Minera Norte",
		Completion:    lifecycle.Completion{Status: lifecycle.CompletionEnProceso, TotalRequired: 2, TotalApproved: 1, ProgressPercent: 50},
		Aprobados:     []entity.Trabajador{{ID: "trab-1", Numero: 1, Nombre: "Ana Pérez", Rut: "11.111.111-1", Especialidad: "Soldador"}},
		GeneradoEn:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	out, err := NewMarotoReportRenderer().RenderProjectReport(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
