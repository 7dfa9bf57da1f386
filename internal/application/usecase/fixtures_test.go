package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/store"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reclutamiento-api/pkg/logger"
)

var (
	ctx   = context.Background()
	admin = auth.Actor{ID: "admin-1", Role: entity.RolAdmin}
	// usuarioNorte usuario de cli-norte; usuarioSur de otro cliente.
	usuarioNorte = auth.Actor{ID: "user-1", Role: entity.RolUsuario, ClienteID: "cli-norte"}
	usuarioSur   = auth.Actor{ID: "user-2", Role: entity.RolUsuario, ClienteID: "cli-sur"}
)

func fecha(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

// fixture dos clientes, un proyecto publicado de 2 cupos (pro-1, cli-norte), un borrador,
// un revisor y tres trabajadores: t1 en revisión, t2 y t3 validados.
func fixture() *entity.Snapshot {
	return &entity.Snapshot{
		Admins:    []entity.Admin{{ID: "admin-1", Nombre: "Admin", Email: "admin@demo.cl", Password: "admin"}},
		Revisores: []entity.Revisor{{ID: "rev-1", UserID: "user-r1", Nombre: "Rita", Email: "rita@demo.cl", Password: "rev"}},
		Clientes: []entity.Cliente{
			{ID: "cli-norte", Nombre: "Minera Norte", ProyectosActivos: []string{"pro-1", "pro-2"},
				Usuarios: []entity.Usuario{{ID: "user-1", Nombre: "Nora", Email: "nora@norte.cl", Password: "n", ClienteID: "cli-norte"}}},
			{ID: "cli-sur", Nombre: "Forestal Sur",
				Usuarios: []entity.Usuario{{ID: "user-2", Nombre: "Sara", Email: "sara@sur.cl", Password: "s", ClienteID: "cli-sur"}}},
		},
		Usuarios: []entity.Usuario{
			{ID: "user-1", Nombre: "Nora", Email: "nora@norte.cl", Password: "n", ClienteID: "cli-norte"},
			{ID: "user-2", Nombre: "Sara", Email: "sara@sur.cl", Password: "s", ClienteID: "cli-sur"},
		},
		Proyectos: []entity.Proyecto{
			{ID: "pro-1", Nombre: "Parada de planta", ClienteID: "cli-norte", CantidadTrabajadores: 2,
				Puestos: []entity.Puesto{{Tipo: "Soldador", Categoria: entity.CategoriaTecnico, Cantidad: 2, Sueldo: decimal.NewFromInt(900000),
					Turnos: []entity.TurnoAsignado{{Nombre: "Día", Horario: "8-20", Cantidad: 2}}}},
				FechaInicioReclutamiento: fecha(1), FechaTerminoReclutamiento: fecha(10), FechaInicioTrabajo: fecha(20),
				Estado: entity.ProyectoPublicado},
			{ID: "pro-2", Nombre: "Borrador", ClienteID: "cli-norte", Estado: entity.ProyectoBorrador},
		},
		Trabajadores: []entity.Trabajador{
			{ID: "t1", Numero: 1, Nombre: "Ana", Rut: "1-9", Especialidad: "Soldador", EstadoDocumental: entity.EstadoEnRevision},
			{ID: "t2", Numero: 2, Nombre: "Beto", Rut: "2-7", Especialidad: "Mecánico", EstadoDocumental: entity.EstadoValidado},
			{ID: "t3", Numero: 3, Nombre: "Carla", Rut: "3-5", Especialidad: "Eléctrico", EstadoDocumental: entity.EstadoValidado},
		},
		TrabajadorCredenciales: []entity.TrabajadorCredencial{{ID: "t1", Email: "ana@mail.cl", Password: "ana"}},
	}
}

func newStore(t *testing.T) (*store.Store, *memory.SnapshotRepo) {
	t.Helper()
	repo := memory.NewSnapshotRepository()
	st := store.New(repo, fixture(), logger.Nop())
	require.NoError(t, st.Load(ctx))
	return st, repo
}

func trabajador(t *testing.T, st *store.Store, id string) entity.Trabajador {
	t.Helper()
	s := st.Snapshot()
	i := s.TrabajadorIndex(id)
	require.GreaterOrEqual(t, i, 0, "trabajador %s", id)
	return s.Trabajadores[i]
}

func proyectoRequest(clienteID, estado string) dto.ProyectoRequest {
	return dto.ProyectoRequest{
		Nombre:    "Mantención",
		ClienteID: clienteID,
		Ciudad:    "Calama",
		Puestos: []dto.PuestoRequest{
			{Tipo: "Soldador", Categoria: entity.CategoriaTecnico, Cantidad: 3, Sueldo: decimal.NewFromInt(1000000),
				Turnos: []dto.TurnoRequest{{Nombre: "Día", Cantidad: 2}, {Nombre: "Noche", Cantidad: 1}}},
			{Tipo: "Ayudante", Categoria: entity.CategoriaTecnico, Cantidad: 1,
				Turnos: []dto.TurnoRequest{{Nombre: "Día", Cantidad: 1}}},
		},
		FechaInicioReclutamiento:  fecha(1),
		FechaTerminoReclutamiento: fecha(5),
		FechaInicioTrabajo:        fecha(15),
		Estado:                    estado,
	}
}
