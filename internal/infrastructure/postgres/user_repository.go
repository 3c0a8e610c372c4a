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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, nombre, apellido, celular, rol_id, created_at, updated_at`

// Create inserta un usuario nuevo.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, nombre, apellido, celular, rol_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Nombre, u.Apellido, u.Celular, u.RolID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por su UUID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email (case-insensitive).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindEmailByFullName resuelve "Nombre Apellido" al email de login.
// Devuelve cadena vacía si no hay coincidencia.
func (r *UserRepo) FindEmailByFullName(ctx context.Context, fullName string) (string, error) {
	query := `
		SELECT email FROM users
		WHERE LOWER(TRIM(nombre || ' ' || apellido)) = LOWER(TRIM($1))
		LIMIT 1`
	var email string
	err := r.q.QueryRow(ctx, query, fullName).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find email by full name: %w", err)
	}
	return email, nil
}

// UpdateProfile actualiza nombre, apellido y celular.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET nombre = $2, apellido = $3, celular = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Apellido, u.Celular)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithRole devuelve todos los usuarios con el nombre de su rol.
func (r *UserRepo) ListWithRole(ctx context.Context) ([]repository.UserWithRole, error) {
	query := `
		SELECT u.id, u.nombre, u.apellido, COALESCE(r.nombre, ''), u.email
		FROM users u
		LEFT JOIN roles r ON r.id = u.rol_id
		ORDER BY u.nombre ASC, u.apellido ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []repository.UserWithRole
	for rows.Next() {
		var row repository.UserWithRole
		if err := rows.Scan(&row.ID, &row.Nombre, &row.Apellido, &row.Rol, &row.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Apellido, &u.Celular,
		&u.RolID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
