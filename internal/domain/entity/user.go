package entity

import (
	"strings"
	"time"
)

// User es el perfil de un usuario del sistema con sus credenciales.
// Cada usuario referencia exactamente un rol.
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt, nunca viaja en respuestas
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Celular      string    `json:"celular"`
	RolID        int64     `json:"rol_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName como aparece en la columna Responsable de la tabla de inventario.
func (u User) FullName() string {
	return strings.TrimSpace(u.Nombre + " " + u.Apellido)
}
