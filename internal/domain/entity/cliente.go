package entity

// PlanContratado plan comercial del cliente.
type PlanContratado string

const (
	PlanPorProyecto   PlanContratado = "Por Proyecto"
	PlanMensual       PlanContratado = "Mensual"
	PlanPersonalizado PlanContratado = "Personalizado"
)

// MaxUsuariosPorCliente límite de usuarios de un cliente.
const MaxUsuariosPorCliente = 5

// Cliente empresa mandante dueña de proyectos.
type Cliente struct {
	ID                string         `json:"id"`
	Nombre            string         `json:"nombre"`
	Usuarios          []Usuario      `json:"usuarios"`
	ProyectosActivos  []string       `json:"proyectosActivos"`
	LogoURL           string         `json:"logoUrl,omitempty"`
	ContactoPrincipal string         `json:"contactoPrincipal,omitempty"`
	TelefonoPrincipal string         `json:"telefonoPrincipal,omitempty"`
	EmailPrincipal    string         `json:"emailPrincipal,omitempty"`
	Direccion         string         `json:"direccion,omitempty"`
	PlanContratado    PlanContratado `json:"planContratado,omitempty"`
}

// Clone devuelve una copia profunda del cliente.
func (c Cliente) Clone() Cliente {
	out := c
	out.Usuarios = append([]Usuario(nil), c.Usuarios...)
	out.ProyectosActivos = append([]string(nil), c.ProyectosActivos...)
	return out
}

// Usuario cuenta de un cliente (portal usuario).
type Usuario struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	Password        string `json:"password,omitempty"`
	Telefono        string `json:"telefono"`
	Cargo           string `json:"cargo"`
	HorarioContacto string `json:"horarioContacto"`
	ClienteID       string `json:"clienteId"`
}
