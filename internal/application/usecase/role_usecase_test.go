package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
)

func TestRoleDelete_ConUsuariosAsignados(t *testing.T) {
	repo := newFakeRoleRepo(entity.Role{ID: 1, Nombre: "Cocinero"})
	repo.counts[1] = 3
	uc := NewRoleUseCase(repo, testLogger())

	err := uc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrRoleInUse)
	_, getErr := repo.GetByID(context.Background(), 1)
	assert.NoError(t, getErr)
}

func TestRoleDelete_SinUsuarios(t *testing.T) {
	repo := newFakeRoleRepo(entity.Role{ID: 1, Nombre: "Cocinero"})
	uc := NewRoleUseCase(repo, testLogger())

	require.NoError(t, uc.Delete(context.Background(), 1))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleList_ConConteos(t *testing.T) {
	repo := newFakeRoleRepo(
		entity.Role{ID: 1, Nombre: "Administrador"},
		entity.Role{ID: 2, Nombre: "Cocinero"},
	)
	repo.counts[2] = 5
	uc := NewRoleUseCase(repo, testLogger())

	roles, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Administrador", roles[0].Nombre)
	assert.Zero(t, roles[0].UserCount)
	assert.Equal(t, int64(5), roles[1].UserCount)
}

func TestRoleHasPermission(t *testing.T) {
	repo := newFakeRoleRepo(entity.Role{
		ID:                  1,
		Nombre:              "Cocinero",
		CanRegisterMovement: true,
	})
	uc := NewRoleUseCase(repo, testLogger())

	ok, err := uc.HasPermission(context.Background(), 1, entity.PermRegisterMovement)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.HasPermission(context.Background(), 1, entity.PermManageRoles)
	require.NoError(t, err)
	assert.False(t, ok)

	// Rol inexistente no concede permisos.
	ok, err = uc.HasPermission(context.Background(), 99, entity.PermManageRoles)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleCreate_NombreVacio(t *testing.T) {
	uc := NewRoleUseCase(newFakeRoleRepo(), testLogger())

	err := uc.Create(context.Background(), &entity.Role{Nombre: "  "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
