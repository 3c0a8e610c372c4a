package usecase

import (
	"context"
	"strings"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// UserUseCase perfil propio y listado privilegiado de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile actualiza nombre, apellido y celular del propio usuario.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID, nombre, apellido, celular string) (*entity.User, error) {
	nombre = strings.TrimSpace(nombre)
	apellido = strings.TrimSpace(apellido)
	if nombre == "" || apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Nombre = nombre
	u.Apellido = apellido
	u.Celular = strings.TrimSpace(celular)
	if err := uc.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListAll devuelve todos los usuarios con su rol (solo para administradores).
func (uc *UserUseCase) ListAll(ctx context.Context) ([]repository.UserWithRole, error) {
	return uc.repo.ListWithRole(ctx)
}
