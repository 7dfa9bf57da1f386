package entity

// Rol identifica el portal (y la colección de cuentas) de un actor autenticado.
type Rol string

const (
	RolAdmin      Rol = "Administrador"
	RolRevisor    Rol = "Revisor"
	RolUsuario    Rol = "Usuario"
	RolTrabajador Rol = "Trabajador"
)

// Valid informa si el rol es uno de los cuatro portales conocidos.
func (r Rol) Valid() bool {
	switch r {
	case RolAdmin, RolRevisor, RolUsuario, RolTrabajador:
		return true
	default:
		return false
	}
}
