package dto

import "github.com/jhoicas/Reclutamiento-api/internal/domain/entity"

// UsuarioRequest usuario de cliente. ID vacío crea uno nuevo; Password vacío conserva el actual.
type UsuarioRequest struct {
	ID              string `json:"id,omitempty"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	Password        string `json:"password,omitempty"`
	Telefono        string `json:"telefono"`
	Cargo           string `json:"cargo"`
	HorarioContacto string `json:"horarioContacto"`
}

// ClienteRequest alta o edición de cliente con sus usuarios (1 a 5).
type ClienteRequest struct {
	Nombre            string                `json:"nombre"`
	LogoURL           string                `json:"logoUrl"`
	ContactoPrincipal string                `json:"contactoPrincipal"`
	TelefonoPrincipal string                `json:"telefonoPrincipal"`
	EmailPrincipal    string                `json:"emailPrincipal"`
	Direccion         string                `json:"direccion"`
	PlanContratado    entity.PlanContratado `json:"planContratado"`
	Usuarios          []UsuarioRequest      `json:"usuarios"`
}

// UsuarioResponse usuario de cliente (sin password).
type UsuarioResponse struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Cargo           string `json:"cargo"`
	HorarioContacto string `json:"horarioContacto"`
	ClienteID       string `json:"clienteId"`
}

// ClienteResponse cliente con usuarios.
type ClienteResponse struct {
	ID                string                `json:"id"`
	Nombre            string                `json:"nombre"`
	Usuarios          []UsuarioResponse     `json:"usuarios"`
	ProyectosActivos  []string              `json:"proyectosActivos"`
	LogoURL           string                `json:"logoUrl,omitempty"`
	ContactoPrincipal string                `json:"contactoPrincipal,omitempty"`
	TelefonoPrincipal string                `json:"telefonoPrincipal,omitempty"`
	EmailPrincipal    string                `json:"emailPrincipal,omitempty"`
	Direccion         string                `json:"direccion,omitempty"`
	PlanContratado    entity.PlanContratado `json:"planContratado,omitempty"`
}

// ToUsuarioResponse quita la contraseña.
func ToUsuarioResponse(u entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Email:           u.Email,
		Telefono:        u.Telefono,
		Cargo:           u.Cargo,
		HorarioContacto: u.HorarioContacto,
		ClienteID:       u.ClienteID,
	}
}

// ToClienteResponse mapea el cliente y sus usuarios.
func ToClienteResponse(c entity.Cliente) ClienteResponse {
	users := make([]UsuarioResponse, 0, len(c.Usuarios))
	for _, u := range c.Usuarios {
		users = append(users, ToUsuarioResponse(u))
	}
	proyectos := c.ProyectosActivos
	if proyectos == nil {
		proyectos = []string{}
	}
	return ClienteResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Usuarios:          users,
		ProyectosActivos:  proyectos,
		LogoURL:           c.LogoURL,
		ContactoPrincipal: c.ContactoPrincipal,
		TelefonoPrincipal: c.TelefonoPrincipal,
		EmailPrincipal:    c.EmailPrincipal,
		Direccion:         c.Direccion,
		PlanContratado:    c.PlanContratado,
	}
}
