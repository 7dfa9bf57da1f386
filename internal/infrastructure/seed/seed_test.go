package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

func TestLoad_SemillaDelRepositorio(t *testing.T) {
	snap, err := Load(filepath.Join("..", "..", "..", "assets", "seed.yaml"))
	require.NoError(t, err)

	require.Len(t, snap.Admins, 1)
	require.Len(t, snap.Revisores, 1)
	require.Len(t, snap.Clientes, 2)
	require.Len(t, snap.Proyectos, 2)
	require.Len(t, snap.Trabajadores, 3)
	assert.Len(t, snap.Usuarios, 2, "usuarios completados desde los clientes")
	assert.Nil(t, snap.PlatformLogo)

	pro := snap.Proyectos[0]
	assert.Equal(t, entity.ProyectoPublicado, pro.Estado)
	require.Len(t, pro.Puestos, 2)
	assert.True(t, decimal.RequireFromString("1250000.50").Equal(pro.Puestos[0].Sueldo))
	assert.Equal(t, entity.CategoriaTecnicoCalificado, pro.Puestos[0].Categoria)

	tra := snap.Trabajadores[0]
	assert.Equal(t, entity.EstadoAsignado, tra.EstadoDocumental)
	assert.Equal(t, entity.EscenarioEntrevista, tra.ProximoEscenario)
	require.NotNil(t, tra.FechaNacimiento)
	assert.Equal(t, 1990, tra.FechaNacimiento.Year())
	assert.Equal(t, 3, snap.MaxNumero())
}

func TestParse_JSONDeRespaldo(t *testing.T) {
	doc := `{"trabajadores":[{"id":"t1","numero":7,"nombre":"Ana","fechaRegistro":"2024-03-04T10:30:00Z","estadoDocumental":"Validado"}],"platformLogo":"data:image/png;base64,AA=="}`
	snap, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, snap.Trabajadores, 1)
	assert.Equal(t, 7, snap.Trabajadores[0].Numero)
	assert.True(t, time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC).Equal(snap.Trabajadores[0].FechaRegistro))
	require.NotNil(t, snap.PlatformLogo)
	assert.Equal(t, "data:image/png;base64,AA==", *snap.PlatformLogo)
}

func TestParse_UsuariosSinDuplicar(t *testing.T) {
	doc := `
usuarios:
  - id: u1
    nombre: Ya existe
    clienteId: c1
clientes:
  - id: c1
    nombre: Cliente
    usuarios:
      - id: u1
        nombre: Ya existe
      - id: u2
        nombre: Nuevo
`
	snap, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, snap.Usuarios, 2)
	assert.Equal(t, "u2", snap.Usuarios[1].ID)
	assert.Equal(t, "c1", snap.Usuarios[1].ClienteID)
}

func TestParse_Errores(t *testing.T) {
	_, err := Parse([]byte("   \n"))
	assert.Error(t, err)

	_, err = Parse([]byte("trabajadores: ["))
	assert.Error(t, err)

	_, err = Parse([]byte(`trabajadores: [{fechaRegistro: "ayer"}]`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "no.yaml"))
	assert.Error(t, err)
}
