// Package pdf genera el reporte de contratación de un proyecto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto + Cliente  │  Estado + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PANEL: Requeridos / Aprobados / Carpetas / Avance %         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CARGOS: Tipo | Categoría | Cantidad | Sueldo                │
//	│  APROBADOS: N° | Nombre | RUT | Especialidad                 │
//	│  EN CONTRATACIÓN: N° | Nombre | RUT | Etapa                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// MarotoReportRenderer implementa analytics.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

var _ analytics.ReportRenderer = (*MarotoReportRenderer)(nil)

// NewMarotoReportRenderer construye el generador.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// RenderProjectReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderProjectReport(_ context.Context, r analytics.ProjectReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de contratación - "+r.Proyecto.Nombre, true).
		WithAuthor(nonEmpty(r.ClienteNombre, "Plataforma de reclutamiento"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(completionRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("CARGOS REQUERIDOS"))
	m.AddRows(tableHeaderRow("Cargo", "Categoría", "Cantidad", "Sueldo"))
	for _, pu := range r.Proyecto.Puestos {
		m.AddRows(tableRow(pu.Tipo, string(pu.Categoria), fmt.Sprint(pu.Cantidad), "$"+formatMoney(pu.Sueldo.StringFixed(0))))
	}

	m.AddRows(row.New(4))
	m.AddRows(sectionRow(fmt.Sprintf("APROBADOS PARA CONTRATAR (%d)", len(r.Aprobados))))
	m.AddRows(workerRows(r.Aprobados, "Especialidad", func(t entity.Trabajador) string { return t.Especialidad })...)

	m.AddRows(row.New(4))
	m.AddRows(sectionRow(fmt.Sprintf("EN CONTRATACIÓN (%d)", len(r.EnContratacion))))
	m.AddRows(workerRows(r.EnContratacion, "Etapa", func(t entity.Trabajador) string { return string(t.ProximoEscenario) })...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: proyecto + cliente (izq) y estado + fecha (der).
func headerRow(r analytics.ProjectReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Proyecto.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cliente: %s   |   Ciudad: %s",
				nonEmpty(r.ClienteNombre, "—"), nonEmpty(r.Proyecto.Ciudad, "—"),
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("REPORTE DE CONTRATACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Completion.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7, Color: statusColor(r),
			}),
			text.New("Fecha: "+r.GeneradoEn.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// completionRow: panel de completitud en cuatro columnas.
func completionRow(r analytics.ProjectReport) core.Row {
	c := r.Completion
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return row.New(16).Add(
		metric("Requeridos", fmt.Sprint(c.TotalRequired)),
		metric("Aprobados", fmt.Sprint(c.TotalApproved)),
		metric("Carpetas solicitadas", fmt.Sprint(c.FoldersRequested)),
		metric("Avance", fmt.Sprintf("%.0f%%", c.ProgressPercent)),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(c1, c2, c3, c4 string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h(c1, 4, align.Left),
		h(c2, 3, align.Left),
		h(c3, 2, align.Center),
		h(c4, 3, align.Right),
	)
}

func tableRow(c1, c2, c3, c4 string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(c1, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(c2, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(c3, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(c4, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// workerRows: tabla de candidatos; una fila de aviso si no hay ninguno.
func workerRows(ws []entity.Trabajador, lastLabel string, last func(entity.Trabajador) string) []core.Row {
	if len(ws) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin candidatos en esta etapa.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	rows := []core.Row{tableHeaderRow("Nombre", "RUT", "N°", lastLabel)}
	for _, t := range ws {
		rows = append(rows, tableRow(t.Nombre, nonEmpty(t.Rut, "—"), fmt.Sprint(t.Numero), nonEmpty(last(t), "—")))
	}
	return rows
}

func statusColor(r analytics.ProjectReport) *props.Color {
	if r.Completion.IsCompleted {
		return colorGreen
	}
	return colorPrimary
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
