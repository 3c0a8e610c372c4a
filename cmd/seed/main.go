// Siembra los roles por defecto (Administrador, Cocinero) y el usuario
// administrador inicial. Idempotente: no duplica lo que ya existe.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/infrastructure/postgres"
	"github.com/alaire/inventario-api/pkg/config"
	"github.com/alaire/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	admin := entity.Role{
		Nombre:              "Administrador",
		CanEditInventory:    true,
		CanRegisterMovement: true,
		CanAddProduct:       true,
		CanManageUsers:      true,
		CanManageRoles:      true,
		CanSaveInventory:    true,
		CanReviewInventory:  true,
	}
	cocinero := entity.Role{
		Nombre:              "Cocinero",
		CanRegisterMovement: true,
	}

	adminRoleID := int64(0)
	for _, role := range []entity.Role{admin, cocinero} {
		r := role
		if err := roleRepo.Create(ctx, &r); err != nil {
			if err == domain.ErrDuplicate {
				log.Info().Str("rol", r.Nombre).Msg("rol ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("rol", r.Nombre).Msg("crear rol")
		}
		log.Info().Str("rol", r.Nombre).Int64("id", r.ID).Msg("rol creado")
		if r.Nombre == "Administrador" {
			adminRoleID = r.ID
		}
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Info().Msg("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD no definidos, no se crea usuario")
		return
	}

	// Si el rol ya existía en una corrida anterior, se recupera su id.
	if adminRoleID == 0 {
		roles, err := roleRepo.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("listar roles")
		}
		for _, r := range roles {
			if r.Nombre == "Administrador" {
				adminRoleID = r.ID
				break
			}
		}
	}
	if adminRoleID == 0 {
		log.Fatal().Msg("rol Administrador no encontrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       "Admin",
		Apellido:     "Principal",
		RolID:        adminRoleID,
	}
	if err := userRepo.Create(ctx, u); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			log.Info().Str("email", email).Msg("usuario ya existe, se omite")
			return
		}
		log.Fatal().Err(err).Msg("crear usuario administrador")
	}
	log.Info().Str("email", email).Msg("usuario administrador creado")
}
