package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// cuentas con el mismo email en dos colecciones para verificar que no se cruzan roles.
func snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Admins:       []entity.Admin{{ID: "admin-1", Nombre: "Admin", Email: "multi@demo.cl", Password: "admin"}},
		Revisores:    []entity.Revisor{{ID: "rev-1", Nombre: "Rita", Email: "rita@demo.cl", Password: "rev"}},
		Usuarios:     []entity.Usuario{{ID: "user-1", Nombre: "Nora", Email: "multi@demo.cl", Password: "user", ClienteID: "cli-1", Cargo: "Jefa"}},
		Trabajadores: []entity.Trabajador{{ID: "trab-1", Nombre: "Ana"}},
		TrabajadorCredenciales: []entity.TrabajadorCredencial{
			{ID: "trab-1", Email: "ana@mail.cl", Password: "ana"},
			{ID: "trab-2", Email: "solo@mail.cl", Password: "x"},
		},
	}
}

func TestAuthenticate_PorRol(t *testing.T) {
	s := snapshot()
	v := auth.PlainVerifier{}

	u, err := auth.Authenticate(s, "multi@demo.cl", "admin", entity.RolAdmin, v)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", u.ID)

	u, err = auth.Authenticate(s, "multi@demo.cl", "user", entity.RolUsuario, v)
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "cli-1", u.ClienteID)
	assert.Equal(t, "Jefa", u.Cargo)

	u, err = auth.Authenticate(s, "rita@demo.cl", "rev", entity.RolRevisor, v)
	require.NoError(t, err)
	assert.Equal(t, entity.RolRevisor, u.Role)

	u, err = auth.Authenticate(s, "ana@mail.cl", "ana", entity.RolTrabajador, v)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Nombre)

	// credencial sin perfil: el nombre es el email
	u, err = auth.Authenticate(s, "solo@mail.cl", "x", entity.RolTrabajador, v)
	require.NoError(t, err)
	assert.Equal(t, "solo@mail.cl", u.Nombre)
}

func TestAuthenticate_NoCruzaRoles(t *testing.T) {
	s := snapshot()
	v := auth.PlainVerifier{}

	_, err := auth.Authenticate(s, "multi@demo.cl", "user", entity.RolAdmin, v)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Authenticate(s, "rita@demo.cl", "rev", entity.RolAdmin, v)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Authenticate(s, "rita@demo.cl", "otra", entity.RolRevisor, v)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Authenticate(s, "", "x", entity.RolRevisor, v)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = auth.Authenticate(s, "rita@demo.cl", "rev", entity.Rol("Root"), v)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGuard(t *testing.T) {
	admin := &auth.CurrentUser{ID: "admin-1", Role: entity.RolAdmin}

	assert.Equal(t, auth.Decision{Allowed: true}, auth.Guard(admin, entity.RolAdmin))
	assert.Equal(t, auth.Decision{Redirect: "/admin"}, auth.Guard(admin, entity.RolRevisor))
	assert.Equal(t, auth.Decision{Redirect: "/usuario/login"}, auth.Guard(nil, entity.RolUsuario))
	assert.Equal(t, auth.Decision{Redirect: "/trabajador"}, auth.Guard(nil, entity.RolTrabajador))
}

func TestPaths(t *testing.T) {
	tests := []struct {
		rol       entity.Rol
		dashboard string
		login     string
	}{
		{entity.RolAdmin, "/admin", "/admin/login"},
		{entity.RolRevisor, "/revisor", "/revisor/login"},
		{entity.RolUsuario, "/usuario", "/usuario/login"},
		{entity.RolTrabajador, "/trabajador", "/trabajador"},
		{entity.Rol("otro"), "/", "/"},
	}
	for _, tt := range tests {
		t.Run(string(tt.rol), func(t *testing.T) {
			assert.Equal(t, tt.dashboard, auth.DashboardPath(tt.rol))
			assert.Equal(t, tt.login, auth.LoginPath(tt.rol))
		})
	}
}

func TestCanAccessProject(t *testing.T) {
	p := entity.Proyecto{ID: "pro-1", ClienteID: "cli-1"}

	assert.NoError(t, auth.Actor{Role: entity.RolAdmin}.CanAccessProject(p))
	assert.NoError(t, auth.Actor{Role: entity.RolRevisor}.CanAccessProject(p))
	assert.NoError(t, auth.Actor{Role: entity.RolUsuario, ClienteID: "cli-1"}.CanAccessProject(p))
	assert.ErrorIs(t, auth.Actor{Role: entity.RolUsuario, ClienteID: "cli-2"}.CanAccessProject(p), domain.ErrForbidden)
	assert.ErrorIs(t, auth.Actor{Role: entity.RolTrabajador}.CanAccessProject(p), domain.ErrForbidden)
}
