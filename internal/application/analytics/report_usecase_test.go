package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
)

type fakeRenderer struct {
	got analytics.ProjectReport
	err error
}

func (f *fakeRenderer) RenderProjectReport(_ context.Context, r analytics.ProjectReport) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func TestBuildProjectReport(t *testing.T) {
	uc := analytics.NewReportUseCase(newStore(t, fixture()), &fakeRenderer{})

	r, err := uc.BuildProjectReport(usuario1, "pro-1")
	require.NoError(t, err)
	assert.Equal(t, "Minera Norte", r.ClienteNombre)
	require.Len(t, r.Aprobados, 1)
	assert.Equal(t, "w2", r.Aprobados[0].ID)
	require.Len(t, r.EnContratacion, 1)
	assert.Equal(t, "w7", r.EnContratacion[0].ID)
	assert.False(t, r.Completion.IsCompleted, "el contratado no cuenta como aprobado")
	assert.Equal(t, 50.0, r.Completion.ProgressPercent)

	_, err = uc.BuildProjectReport(usuario2, "pro-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProjectReportPDF(t *testing.T) {
	fr := &fakeRenderer{}
	uc := analytics.NewReportUseCase(newStore(t, fixture()), fr)

	pdf, name, err := uc.ProjectReportPDF(context.Background(), admin, "pro-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Regexp(t, `^reporte_parada_de_planta_\d{4}-\d{2}-\d{2}\.pdf$`, name)
	assert.Equal(t, "pro-1", fr.got.Proyecto.ID)
}

func TestProjectReportPDF_ErrorRenderer(t *testing.T) {
	boom := errors.New("boom")
	uc := analytics.NewReportUseCase(newStore(t, fixture()), &fakeRenderer{err: boom})

	_, _, err := uc.ProjectReportPDF(context.Background(), admin, "pro-1")
	assert.ErrorIs(t, err, boom)
}
