package dto

// LoginRequest entrada para login: la cuenta se busca solo en la colección del rol.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SessionUser usuario autenticado (sin password).
type SessionUser struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ClienteID string `json:"clienteId,omitempty"`
	Cargo     string `json:"cargo,omitempty"`
}

// LoginResponse token JWT, usuario y tablero de destino.
type LoginResponse struct {
	Token    string      `json:"token"`
	User     SessionUser `json:"user"`
	Redirect string      `json:"redirect"`
}
