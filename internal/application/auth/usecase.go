// Package auth implementa registro e inicio de sesión con emisión de JWT.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/jwt"
	"github.com/alaire/inventario-api/pkg/logger"
)

// TokenConfig parámetros de emisión de tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro y login.
type UseCase struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	tokens TokenConfig
	log    *logger.Logger
}

func NewUseCase(users repository.UserRepository, roles repository.RoleRepository, tokens TokenConfig, log *logger.Logger) *UseCase {
	return &UseCase{users: users, roles: roles, tokens: tokens, log: log}
}

// Register crea un usuario con contraseña hasheada. El rol debe existir.
func (uc *UseCase) Register(ctx context.Context, email, password, nombre, apellido, celular string, rolID int64) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	nombre = strings.TrimSpace(nombre)
	apellido = strings.TrimSpace(apellido)
	if email == "" || !strings.Contains(email, "@") || len(password) < 6 || nombre == "" || apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.roles.GetByID(ctx, rolID); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	if existing, err := uc.users.GetByEmail(ctx, email); err != nil && err != domain.ErrNotFound {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Apellido:     apellido,
		Celular:      strings.TrimSpace(celular),
		RolID:        rolID,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.log.Info().Str("email", email).Msg("usuario registrado")
	return u, nil
}

// Login autentica por email o por "Nombre Apellido" y devuelve un JWT.
// Un identificador sin "@" se resuelve primero al email registrado.
func (uc *UseCase) Login(ctx context.Context, identificador, password string) (string, *entity.User, error) {
	identificador = strings.TrimSpace(identificador)
	if identificador == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	email := identificador
	if !strings.Contains(identificador, "@") {
		resolved, err := uc.users.FindEmailByFullName(ctx, identificador)
		if err != nil {
			return "", nil, err
		}
		if resolved == "" {
			return "", nil, domain.ErrUserNotFound
		}
		email = resolved
	}

	u, err := uc.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == domain.ErrNotFound {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}

	role, err := uc.roles.GetByID(ctx, u.RolID)
	if err != nil {
		return "", nil, err
	}
	token, err := jwt.Generate(uc.tokens.Secret, u.ID, role.ID, role.Nombre, uc.tokens.Issuer, uc.tokens.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	uc.log.Info().Str("email", u.Email).Msg("inicio de sesión")
	return token, u, nil
}
