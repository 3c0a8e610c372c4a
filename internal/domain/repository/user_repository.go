package repository

import (
	"context"

	"github.com/alaire/inventario-api/internal/domain/entity"
)

// UserWithRole es una fila del listado privilegiado de usuarios (join con roles).
type UserWithRole struct {
	ID       string
	Nombre   string
	Apellido string
	Rol      string
	Email    string
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindEmailByFullName resuelve "Nombre Apellido" (case-insensitive) al email
	// de login. Devuelve cadena vacía si no hay coincidencia.
	FindEmailByFullName(ctx context.Context, fullName string) (string, error)
	// UpdateProfile actualiza nombre, apellido y celular.
	UpdateProfile(ctx context.Context, u *entity.User) error
	// ListWithRole devuelve todos los usuarios con el nombre de su rol.
	ListWithRole(ctx context.Context) ([]UserWithRole, error)
}
