package entity

import "time"

// Revisor personal interno que valida documentos y distribuye candidatos.
type Revisor struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Nombre             string    `json:"nombre"`
	Email              string    `json:"email"`
	Password           string    `json:"password"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	ProyectosAsignados []string  `json:"proyectosAsignados,omitempty"`
}

// Admin cuenta privilegiada plana.
type Admin struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
