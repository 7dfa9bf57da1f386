package auth

import (
	"fmt"

	"github.com/jhoicas/Reclutamiento-api/internal/domain"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// Actor quién ejecuta la operación; se arma con los claims del token.
type Actor struct {
	ID        string
	Role      entity.Rol
	ClienteID string
}

// CanAccessProject un usuario de cliente solo opera sobre proyectos de su cliente.
// Administradores y revisores operan sobre cualquiera.
func (a Actor) CanAccessProject(p entity.Proyecto) error {
	switch a.Role {
	case entity.RolAdmin, entity.RolRevisor:
		return nil
	case entity.RolUsuario:
		if a.ClienteID != "" && a.ClienteID == p.ClienteID {
			return nil
		}
		return fmt.Errorf("%w: el proyecto no pertenece a su cliente", domain.ErrForbidden)
	default:
		return domain.ErrForbidden
	}
}
