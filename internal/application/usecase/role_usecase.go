package usecase

import (
	"context"
	"strings"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// RoleUseCase administra roles y resuelve permisos para el middleware.
type RoleUseCase struct {
	repo repository.RoleRepository
	log  *logger.Logger
}

func NewRoleUseCase(repo repository.RoleRepository, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{repo: repo, log: log}
}

func (uc *RoleUseCase) Create(ctx context.Context, r *entity.Role) error {
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Nombre == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return err
	}
	uc.log.Info().Str("nombre", r.Nombre).Msg("rol creado")
	return nil
}

func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	return uc.repo.GetByID(ctx, id)
}

// RoleWithCount rol más el número de usuarios asignados.
type RoleWithCount struct {
	entity.Role
	UserCount int64
}

// List devuelve los roles con su conteo de usuarios.
func (uc *RoleUseCase) List(ctx context.Context) ([]RoleWithCount, error) {
	roles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := uc.repo.UserCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoleWithCount, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleWithCount{Role: *r, UserCount: counts[r.ID]})
	}
	return out, nil
}

func (uc *RoleUseCase) Update(ctx context.Context, r *entity.Role) error {
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Nombre == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.repo.GetByID(ctx, r.ID); err != nil {
		return err
	}
	return uc.repo.Update(ctx, r)
}

// Delete elimina un rol siempre que ningún usuario lo tenga asignado.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := uc.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoleInUse
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("rol eliminado")
	return nil
}

// HasPermission indica si el rol concede el permiso pedido. Un rol
// inexistente no concede nada.
func (uc *RoleUseCase) HasPermission(ctx context.Context, roleID int64, perm string) (bool, error) {
	r, err := uc.repo.GetByID(ctx, roleID)
	if err != nil {
		if err == domain.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return r.Has(perm), nil
}
