package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alaire/inventario-api/internal/application/auth"
	"github.com/alaire/inventario-api/internal/application/export"
	"github.com/alaire/inventario-api/internal/application/inventory"
	"github.com/alaire/inventario-api/internal/application/report"
	"github.com/alaire/inventario-api/internal/application/usecase"
	"github.com/alaire/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	RoleUC           *usecase.RoleUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	PeriodUC         *inventory.PeriodUseCase
	ReportUC         *report.UseCase
	ExportUC         *export.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Roles (listado público: lo necesita el formulario de registro)
	roleHandler := NewRoleHandler(deps.RoleUC)
	api.Get("/roles", roleHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequirePermission(deps.RoleUC, entity.PermAddProduct), productHandler.Create)
	products.Put("/:id", RequirePermission(deps.RoleUC, entity.PermEditInventory), productHandler.Update)
	products.Delete("/:id", RequirePermission(deps.RoleUC, entity.PermEditInventory), productHandler.Delete)

	// Inventory: movimientos y ciclo Guardado/Revisado (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.PeriodUC)
	invGroup.Post("/movements", RequirePermission(deps.RoleUC, entity.PermRegisterMovement), inventoryHandler.RegisterMovement)
	invGroup.Post("/guardado", RequirePermission(deps.RoleUC, entity.PermSaveInventory), inventoryHandler.Save)
	invGroup.Post("/revisado", RequirePermission(deps.RoleUC, entity.PermReviewInventory), inventoryHandler.Review)
	invGroup.Get("/estado", inventoryHandler.State)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/salidas", reportHandler.Salidas)
	reports.Get("/alertas", reportHandler.Alertas)
	reports.Get("/fechas-salidas", reportHandler.FechasSalidas)

	// Export (protegido)
	exportGroup := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC, deps.UserUC)
	exportGroup.Get("/pdf", exportHandler.PDF)
	exportGroup.Get("/imagen", exportHandler.Imagen)

	// Users (protegido; el listado requiere can_manage_users)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/", RequirePermission(deps.RoleUC, entity.PermManageUsers, entity.PermManageRoles), userHandler.List)

	// Administración de roles (protegido; requiere can_manage_roles)
	adminRoles := protected.Group("/admin/roles", RequirePermission(deps.RoleUC, entity.PermManageRoles))
	adminRoles.Get("/", roleHandler.ListAdmin)
	adminRoles.Post("/", roleHandler.Create)
	adminRoles.Put("/:id", roleHandler.Update)
	adminRoles.Delete("/:id", roleHandler.Delete)
}
