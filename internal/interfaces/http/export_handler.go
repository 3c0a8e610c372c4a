package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alaire/inventario-api/internal/application/dto"
	"github.com/alaire/inventario-api/internal/application/export"
	"github.com/alaire/inventario-api/internal/application/usecase"
)

// ExportHandler descarga del inventario como PDF o imagen (protegido).
type ExportHandler struct {
	uc    *export.UseCase
	users *usecase.UserUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase, users *usecase.UserUseCase) *ExportHandler {
	return &ExportHandler{uc: uc, users: users}
}

// descargadoPor resuelve el nombre completo que se imprime en el documento.
func (h *ExportHandler) descargadoPor(c *fiber.Ctx) string {
	if u, err := h.users.Me(c.Context(), GetUserID(c)); err == nil {
		return u.FullName()
	}
	return "Usuario"
}

// PDF godoc
// @Summary      Exportar inventario como PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Param        q  query  string  false  "Filtro por nombre de producto"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Context(), c.Query("q"), h.descargadoPor(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	filename := "inventario-" + time.Now().Format(time.DateOnly) + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Imagen godoc
// @Summary      Exportar inventario como imagen PNG
// @Tags         export
// @Security     Bearer
// @Produce      image/png
// @Param        q  query  string  false  "Filtro por nombre de producto"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/imagen [get]
func (h *ExportHandler) Imagen(c *fiber.Ctx) error {
	data, err := h.uc.Imagen(c.Context(), c.Query("q"), h.descargadoPor(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	filename := "inventario-" + time.Now().Format(time.DateOnly) + ".png"
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
