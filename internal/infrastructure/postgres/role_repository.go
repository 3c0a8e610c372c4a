package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo roles y permisos sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

const roleColumns = `id, nombre, max_users, can_edit_inventory, can_register_movement, can_add_product,
	can_manage_users, can_manage_roles, can_save_inventory, can_review_inventory`

// Create inserta un rol con su matriz de permisos.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (nombre, max_users, can_edit_inventory, can_register_movement, can_add_product,
			can_manage_users, can_manage_roles, can_save_inventory, can_review_inventory)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		role.Nombre, role.MaxUsers, role.CanEditInventory, role.CanRegisterMovement, role.CanAddProduct,
		role.CanManageUsers, role.CanManageRoles, role.CanSaveInventory, role.CanReviewInventory,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	role, err := scanRole(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// List devuelve todos los roles ordenados por nombre.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// Update reemplaza nombre, tope y permisos del rol.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `
		UPDATE roles
		SET nombre = $2, max_users = $3, can_edit_inventory = $4, can_register_movement = $5,
		    can_add_product = $6, can_manage_users = $7, can_manage_roles = $8,
		    can_save_inventory = $9, can_review_inventory = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		role.ID, role.Nombre, role.MaxUsers, role.CanEditInventory, role.CanRegisterMovement,
		role.CanAddProduct, role.CanManageUsers, role.CanManageRoles, role.CanSaveInventory, role.CanReviewInventory,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un rol por ID. El caso de uso verifica antes que no tenga usuarios.
func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountUsers cuenta los usuarios asignados al rol.
func (r *RoleRepo) CountUsers(ctx context.Context, roleID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE rol_id = $1`, roleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

// UserCounts conteo de usuarios por rol.
func (r *RoleRepo) UserCounts(ctx context.Context) (map[int64]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT rol_id, COUNT(*) FROM users GROUP BY rol_id`)
	if err != nil {
		return nil, fmt.Errorf("user counts: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]int64)
	for rows.Next() {
		var roleID, n int64
		if err := rows.Scan(&roleID, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[roleID] = n
	}
	return out, rows.Err()
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(
		&role.ID, &role.Nombre, &role.MaxUsers, &role.CanEditInventory, &role.CanRegisterMovement,
		&role.CanAddProduct, &role.CanManageUsers, &role.CanManageRoles, &role.CanSaveInventory, &role.CanReviewInventory,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
