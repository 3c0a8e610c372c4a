package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alaire/inventario-api/internal/application/dto"
	"github.com/alaire/inventario-api/internal/application/report"
	"github.com/alaire/inventario-api/internal/domain"
)

// ReportHandler reportes de salidas y alertas de stock (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Salidas godoc
// @Summary      Reporte de salidas por producto
// @Description  mode=daily usa date; mode=weekly usa start y end (máx. 8 días); mode=monthly usa date como mes de referencia.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        mode   query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date   query  string  false  "YYYY-MM-DD (daily/monthly; default hoy)"
// @Param        start  query  string  false  "YYYY-MM-DD (weekly)"
// @Param        end    query  string  false  "YYYY-MM-DD (weekly)"
// @Success      200  {object}  dto.SalidasReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/salidas [get]
func (h *ReportHandler) Salidas(c *fiber.Ctx) error {
	var (
		s   *report.Series
		err error
	)
	switch c.Query("mode", "daily") {
	case "daily":
		day, perr := parseReportDate(c.Query("date"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido (YYYY-MM-DD)"})
		}
		s, err = h.uc.SalidasDaily(c.Context(), day)
	case "weekly":
		start, perr := time.Parse(time.DateOnly, c.Query("start"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido (YYYY-MM-DD)"})
		}
		end, perr := time.Parse(time.DateOnly, c.Query("end"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido (YYYY-MM-DD)"})
		}
		s, err = h.uc.SalidasWeekly(c.Context(), start, end)
	case "monthly":
		ref, perr := parseReportDate(c.Query("date"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido (YYYY-MM-DD)"})
		}
		s, err = h.uc.SalidasMonthly(c.Context(), ref)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser daily, weekly o monthly"})
	}
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		if err == domain.ErrRangeTooWide {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RANGE_TOO_WIDE", Message: "el rango no puede ser mayor a 8 días"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.SalidasReportResponse{Labels: s.Labels, Values: s.Values}
	if out.Labels == nil {
		out.Labels = []string{}
	}
	if out.Values == nil {
		out.Values = []int64{}
	}
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Productos con bodega por debajo del mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertResponse
// @Router       /api/reports/alertas [get]
func (h *ReportHandler) Alertas(c *fiber.Ctx) error {
	alerts, err := h.uc.StockAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.StockAlertResponse{ID: a.ID, Nombre: a.Nombre, Bodega: a.Bodega, StockMin: a.StockMin})
	}
	return c.JSON(out)
}

// FechasSalidas godoc
// @Summary      Fechas de reporte con salidas registradas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalidaDatesResponse
// @Router       /api/reports/fechas-salidas [get]
func (h *ReportHandler) FechasSalidas(c *fiber.Ctx) error {
	dates, err := h.uc.SalidaDates(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.SalidaDatesResponse{Fechas: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Fechas = append(out.Fechas, d.Format(time.DateOnly))
	}
	return c.JSON(out)
}
