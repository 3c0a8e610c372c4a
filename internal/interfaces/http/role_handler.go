package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/alaire/inventario-api/internal/application/dto"
	"github.com/alaire/inventario-api/internal/application/usecase"
	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
)

// RoleHandler listado público de roles y administración (protegido).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles disponibles
// @Description  Público: el formulario de registro solo necesita id y nombre.
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RoleOption
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleOption{ID: r.ID, Nombre: r.Nombre})
	}
	return c.JSON(out)
}

// ListAdmin godoc
// @Summary      Listar roles con permisos y conteo de usuarios
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RoleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/roles [get]
func (h *RoleHandler) ListAdmin(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "nombre, max_users, permisos"
// @Success      201   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	role := roleFromRequest(in)
	if err := h.uc.Create(c.Context(), role); err != nil {
		return roleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRoleResponse(usecase.RoleWithCount{Role: *role}))
}

// Update godoc
// @Summary      Editar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del rol"
// @Param        body  body  dto.RoleRequest  true  "nombre, max_users, permisos"
// @Success      200   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	role := roleFromRequest(in)
	role.ID = id
	if err := h.uc.Update(c.Context(), role); err != nil {
		return roleError(c, err)
	}
	return c.JSON(toRoleResponse(usecase.RoleWithCount{Role: *role}))
}

// Delete godoc
// @Summary      Eliminar rol
// @Description  Falla con 409 si el rol tiene usuarios asignados.
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del rol"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return roleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rol eliminado"})
}

func roleError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	if err == domain.ErrRoleInUse {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_IN_USE", Message: "no se puede eliminar un rol en uso"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un rol con ese nombre"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func roleFromRequest(in dto.RoleRequest) *entity.Role {
	return &entity.Role{
		Nombre:              in.Nombre,
		MaxUsers:            in.MaxUsers,
		CanEditInventory:    in.CanEditInventory,
		CanRegisterMovement: in.CanRegisterMovement,
		CanAddProduct:       in.CanAddProduct,
		CanManageUsers:      in.CanManageUsers,
		CanManageRoles:      in.CanManageRoles,
		CanSaveInventory:    in.CanSaveInventory,
		CanReviewInventory:  in.CanReviewInventory,
	}
}

func toRoleResponse(r usecase.RoleWithCount) dto.RoleResponse {
	return dto.RoleResponse{
		ID:                  r.ID,
		Nombre:              r.Nombre,
		MaxUsers:            r.MaxUsers,
		UserCount:           r.UserCount,
		CanEditInventory:    r.CanEditInventory,
		CanRegisterMovement: r.CanRegisterMovement,
		CanAddProduct:       r.CanAddProduct,
		CanManageUsers:      r.CanManageUsers,
		CanManageRoles:      r.CanManageRoles,
		CanSaveInventory:    r.CanSaveInventory,
		CanReviewInventory:  r.CanReviewInventory,
	}
}
