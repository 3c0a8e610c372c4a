package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alaire/inventario-api/internal/application/dto"
	"github.com/alaire/inventario-api/internal/application/inventory"
	"github.com/alaire/inventario-api/internal/domain"
)

// InventoryHandler maneja movimientos y el ciclo Guardado/Revisado (protegido).
type InventoryHandler struct {
	movements *inventory.RegisterMovementUseCase
	period    *inventory.PeriodUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.RegisterMovementUseCase, period *inventory.PeriodUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, period: period}
}

// parseReportDate interpreta YYYY-MM-DD; vacío = hoy.
func parseReportDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.DateOnly, s)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Tipos: ingreso-bodega, ingreso-cocina, bodega-a-cocina, salida-bodega, salida-cocina.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto, tipo, cantidad, report_date (YYYY-MM-DD, opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reportDate, err := parseReportDate(in.ReportDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "report_date inválido (YYYY-MM-DD)"})
	}
	p, err := h.movements.Execute(c.Context(), in.Producto, in.Tipo, in.Cantidad, GetUserID(c), reportDate)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto, tipo o cantidad inválidos"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		if err == domain.ErrInventoryLocked {
			return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "INVENTORY_LOCKED", Message: "el inventario está bloqueado hasta la revisión"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Producto: toProductResponse(p, ""),
		Tipo:     in.Tipo,
		Cantidad: in.Cantidad,
	})
}

// Save godoc
// @Summary      Guardar inventario (cierre de período)
// @Description  Archiva una instantánea del inventario bajo report_date y bloquea las escrituras.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveInventoryRequest  true  "report_date (YYYY-MM-DD, opcional)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/inventory/guardado [post]
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveInventoryRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reportDate, err := parseReportDate(in.ReportDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "report_date inválido (YYYY-MM-DD)"})
	}
	if _, err := h.period.Save(c.Context(), reportDate, GetUserID(c)); err != nil {
		if err == domain.ErrDuplicatePeriod {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PERIOD", Message: "ya existe un reporte para esta fecha"})
		}
		if err == domain.ErrInventoryLocked {
			return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "INVENTORY_LOCKED", Message: "el inventario está bloqueado hasta la revisión"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "inventario guardado"})
}

// Review godoc
// @Summary      Revisar inventario (reapertura de período)
// @Description  Reinicia los contadores de ingreso/salida y reabre las escrituras.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/revisado [post]
func (h *InventoryHandler) Review(c *fiber.Ctx) error {
	if err := h.period.Review(c.Context()); err != nil {
		if err == domain.ErrInventoryOpen {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVENTORY_OPEN", Message: "el inventario no está bloqueado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "inventario revisado"})
}

// State godoc
// @Summary      Estado del período
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodStateResponse
// @Router       /api/inventory/estado [get]
func (h *InventoryHandler) State(c *fiber.Ctx) error {
	estado := h.period.Estado()
	return c.JSON(dto.PeriodStateResponse{
		Estado: estado,
		Locked: estado == inventory.EstadoGuardado,
	})
}
