package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/bulkimport"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

func TestTrabajador_CreateAccount(t *testing.T) {
	st, _ := newStore(t)
	uc := usecase.NewTrabajadorUseCase(st, nil)

	resp, err := uc.CreateAccount(ctx, dto.RegistroRequest{Email: "juan@mail.cl", Password: "x"})
	require.NoError(t, err)

	w := trabajador(t, st, resp.ID)
	assert.Equal(t, 4, w.Numero)
	assert.Equal(t, "juan@mail.cl", w.Nombre)
	assert.Equal(t, entity.EstadoEnRevision, w.EstadoDocumental)
	assert.False(t, w.FechaRegistro.IsZero())

	_, err = uc.CreateAccount(ctx, dto.RegistroRequest{Email: "ANA@mail.cl", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestTrabajador_CompleteProfile_CalculaEdad(t *testing.T) {
	st, _ := newStore(t)
	uc := usecase.NewTrabajadorUseCase(st, nil)
	nac := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	resp, err := uc.CompleteProfile(ctx, "t1", dto.PerfilRequest{Nombre: "Ana María", Rut: "1-9", FechaNacimiento: &nac})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", resp.Nombre)
	assert.Equal(t, bulkimport.AgeAt(nac, time.Now()), resp.Edad)
	assert.GreaterOrEqual(t, resp.Edad, 34)
}

func TestTrabajador_DeleteAccount_BorraCredencial(t *testing.T) {
	st, _ := newStore(t)
	uc := usecase.NewTrabajadorUseCase(st, nil)

	require.NoError(t, uc.DeleteAccount(ctx, "t1"))
	s := st.Snapshot()
	assert.Equal(t, -1, s.TrabajadorIndex("t1"))
	assert.Empty(t, s.TrabajadorCredenciales)

	assert.ErrorIs(t, uc.DeleteAccount(ctx, "t1"), domain.ErrNotFound)
}

func TestTrabajador_Documentos(t *testing.T) {
	st, _ := newStore(t)
	uc := usecase.NewTrabajadorUseCase(st, nil)

	_, err := uc.AttachDocument(ctx, "t1", dto.DocumentoRequest{Tipo: "pasaporte", Contenido: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.AttachDocument(ctx, "t1", dto.DocumentoRequest{Tipo: "CV", Contenido: "https://docs/cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cv"}, resp.Documentos)

	doc, err := uc.GetDocument("t1", "cv")
	require.NoError(t, err)
	assert.Equal(t, "https://docs/cv.pdf", doc.Contenido)

	_, err = uc.GetDocument("t1", "cedula")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrabajador_ListBuscaYPagina(t *testing.T) {
	st, _ := newStore(t)
	uc := usecase.NewTrabajadorUseCase(st, nil)

	resp, err := uc.List(dto.TrabajadorFilter{Q: "mecanico"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "t2", resp.Items[0].ID)

	resp, err = uc.List(dto.TrabajadorFilter{PageRequest: dto.PageRequest{Limit: 2, Offset: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Page.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "t3", resp.Items[0].ID)

	resp, err = uc.List(dto.TrabajadorFilter{EstadoDocumental: string(entity.EstadoValidado)})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestTrabajador_Portal(t *testing.T) {
	st, _ := newStore(t)
	p, err := usecase.NewTrabajadorUseCase(st, nil).Portal("t1")
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.cl", p.Email)
	assert.True(t, p.PerfilCompleto)
	assert.Equal(t, []string{"cv", "cedula", "antecedentes"}, p.DocumentosFalta)
}
