package auth

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// CurrentUser usuario de la sesión: Admin, Revisor, Usuario de cliente o Trabajador,
// con el rol como discriminante.
type CurrentUser struct {
	ID        string     `json:"id"`
	Nombre    string     `json:"nombre"`
	Email     string     `json:"email"`
	Role      entity.Rol `json:"role"`
	ClienteID string     `json:"clienteId,omitempty"`
	Cargo     string     `json:"cargo,omitempty"`
}

// Authenticate busca la cuenta solo en la colección del rol indicado.
// Devuelve ErrUnauthorized si no hay coincidencia exacta de email y contraseña.
func Authenticate(s *entity.Snapshot, email, password string, role entity.Rol, v CredentialVerifier) (*CurrentUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email y contraseña requeridos", domain.ErrInvalidInput)
	}
	switch role {
	case entity.RolAdmin:
		for _, a := range s.Admins {
			if a.Email == email && v.Verify(a.Password, password) {
				return &CurrentUser{ID: a.ID, Nombre: a.Nombre, Email: a.Email, Role: role}, nil
			}
		}
	case entity.RolRevisor:
		for _, r := range s.Revisores {
			if r.Email == email && v.Verify(r.Password, password) {
				return &CurrentUser{ID: r.ID, Nombre: r.Nombre, Email: r.Email, Role: role}, nil
			}
		}
	case entity.RolUsuario:
		for _, u := range s.Usuarios {
			if u.Email == email && v.Verify(u.Password, password) {
				return &CurrentUser{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Role: role, ClienteID: u.ClienteID, Cargo: u.Cargo}, nil
			}
		}
	case entity.RolTrabajador:
		for _, c := range s.TrabajadorCredenciales {
			if c.Email == email && v.Verify(c.Password, password) {
				cu := &CurrentUser{ID: c.ID, Nombre: c.Email, Email: c.Email, Role: role}
				if i := s.TrabajadorIndex(c.ID); i >= 0 {
					cu.Nombre = s.Trabajadores[i].Nombre
				}
				return cu, nil
			}
		}
	default:
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, role)
	}
	return nil, domain.ErrUnauthorized
}

// Decision resultado del guard de rutas.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// Guard permite solo si el rol de la sesión es el requerido. Sin sesión redirige al
// login del rol requerido; con otro rol, al tablero propio.
func Guard(user *CurrentUser, required entity.Rol) Decision {
	if user == nil {
		return Decision{Redirect: LoginPath(required)}
	}
	if user.Role != required {
		return Decision{Redirect: DashboardPath(user.Role)}
	}
	return Decision{Allowed: true}
}

// DashboardPath ruta de inicio de cada rol.
func DashboardPath(r entity.Rol) string {
	switch r {
	case entity.RolAdmin:
		return "/admin"
	case entity.RolRevisor:
		return "/revisor"
	case entity.RolUsuario:
		return "/usuario"
	case entity.RolTrabajador:
		return "/trabajador"
	default:
		return "/"
	}
}

// LoginPath pantalla de login de cada rol; la landing si el rol no tiene login propio.
func LoginPath(r entity.Rol) string {
	switch r {
	case entity.RolAdmin:
		return "/admin/login"
	case entity.RolRevisor:
		return "/revisor/login"
	case entity.RolUsuario:
		return "/usuario/login"
	case entity.RolTrabajador:
		return "/trabajador"
	default:
		return "/"
	}
}
