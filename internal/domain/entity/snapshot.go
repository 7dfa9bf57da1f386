package entity

// Snapshot estado completo de la plataforma: las siete colecciones más el logo.
// Es la unidad de persistencia (una sola clave/fila).
type Snapshot struct {
	Trabajadores           []Trabajador           `json:"trabajadores"`
	Clientes               []Cliente              `json:"clientes"`
	Usuarios               []Usuario              `json:"usuarios"`
	Proyectos              []Proyecto             `json:"proyectos"`
	TrabajadorCredenciales []TrabajadorCredencial `json:"trabajadorCredenciales"`
	Revisores              []Revisor              `json:"revisores"`
	Admins                 []Admin                `json:"admins"`
	PlatformLogo           *string                `json:"platformLogo"`
}

// Clone devuelve una copia profunda; las mutaciones se aplican siempre sobre un clon.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return &Snapshot{}
	}
	out := &Snapshot{
		Trabajadores:           make([]Trabajador, len(s.Trabajadores)),
		Clientes:               make([]Cliente, len(s.Clientes)),
		Usuarios:               append([]Usuario(nil), s.Usuarios...),
		Proyectos:              make([]Proyecto, len(s.Proyectos)),
		TrabajadorCredenciales: append([]TrabajadorCredencial(nil), s.TrabajadorCredenciales...),
		Revisores:              make([]Revisor, len(s.Revisores)),
		Admins:                 append([]Admin(nil), s.Admins...),
	}
	for i, t := range s.Trabajadores {
		out.Trabajadores[i] = t.Clone()
	}
	for i, c := range s.Clientes {
		out.Clientes[i] = c.Clone()
	}
	for i, p := range s.Proyectos {
		out.Proyectos[i] = p.Clone()
	}
	for i, r := range s.Revisores {
		r.ProyectosAsignados = append([]string(nil), r.ProyectosAsignados...)
		out.Revisores[i] = r
	}
	if s.PlatformLogo != nil {
		logo := *s.PlatformLogo
		out.PlatformLogo = &logo
	}
	return out
}

// TrabajadorIndex posición del trabajador o -1.
func (s *Snapshot) TrabajadorIndex(id string) int {
	for i := range s.Trabajadores {
		if s.Trabajadores[i].ID == id {
			return i
		}
	}
	return -1
}

// ProyectoIndex posición del proyecto o -1.
func (s *Snapshot) ProyectoIndex(id string) int {
	for i := range s.Proyectos {
		if s.Proyectos[i].ID == id {
			return i
		}
	}
	return -1
}

// ClienteIndex posición del cliente o -1.
func (s *Snapshot) ClienteIndex(id string) int {
	for i := range s.Clientes {
		if s.Clientes[i].ID == id {
			return i
		}
	}
	return -1
}

// RevisorIndex posición del revisor o -1.
func (s *Snapshot) RevisorIndex(id string) int {
	for i := range s.Revisores {
		if s.Revisores[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxNumero mayor número correlativo de trabajador (0 si no hay).
func (s *Snapshot) MaxNumero() int {
	n := 0
	for _, t := range s.Trabajadores {
		if t.Numero > n {
			n = t.Numero
		}
	}
	return n
}
