package repository

import (
	"context"

	"github.com/alaire/inventario-api/internal/domain/entity"
)

// RoleRepository puerto de persistencia para roles y sus permisos.
type RoleRepository interface {
	Create(ctx context.Context, r *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	// List devuelve todos los roles ordenados por nombre.
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, r *entity.Role) error
	Delete(ctx context.Context, id int64) error
	// CountUsers cuenta los usuarios asignados a un rol (bloquea el borrado).
	CountUsers(ctx context.Context, roleID int64) (int64, error)
	// UserCounts devuelve el conteo de usuarios por rol para el listado admin.
	UserCounts(ctx context.Context) (map[int64]int64, error)
}
