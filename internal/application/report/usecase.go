// Package report agrega los movimientos de salida en series por producto y
// expone las alertas de stock mínimo.
package report

import (
	"context"
	"time"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/repository"
)

// maxWeeklyDays límite del rango semanal inclusivo.
const maxWeeklyDays = 8

// Series pares paralelos etiqueta/valor, en orden de primera aparición.
type Series struct {
	Labels []string
	Values []int64
}

// Alert producto con bodega por debajo de su mínimo.
type Alert struct {
	ID       int64
	Nombre   string
	Bodega   int64
	StockMin int64
}

// UseCase reportes de salidas y alertas de stock.
type UseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
}

func NewUseCase(movements repository.MovementRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{movements: movements, products: products}
}

// SalidasDaily total de salidas por producto en una fecha de reporte.
func (uc *UseCase) SalidasDaily(ctx context.Context, day time.Time) (*Series, error) {
	return uc.salidas(ctx, day, day)
}

// SalidasWeekly total de salidas por producto en un rango inclusivo de a lo
// sumo ocho días.
func (uc *UseCase) SalidasWeekly(ctx context.Context, start, end time.Time) (*Series, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxWeeklyDays {
		return nil, domain.ErrRangeTooWide
	}
	return uc.salidas(ctx, start, end)
}

// SalidasMonthly total de salidas por producto en el mes calendario de ref.
func (uc *UseCase) SalidasMonthly(ctx context.Context, ref time.Time) (*Series, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return uc.salidas(ctx, start, end)
}

// salidas agrupa por producto sumando cantidades. El orden de las etiquetas
// es el de primera aparición en el historial; un producto ya eliminado se
// etiqueta "Producto".
func (uc *UseCase) salidas(ctx context.Context, start, end time.Time) (*Series, error) {
	movs, err := uc.movements.ListSalidas(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var order []int64
	totals := make(map[int64]int64)
	for _, m := range movs {
		if _, seen := totals[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		totals[m.ProductID] += m.Quantity
	}

	names, err := uc.products.NamesByIDs(ctx, order)
	if err != nil {
		return nil, err
	}

	s := &Series{}
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = "Producto"
		}
		s.Labels = append(s.Labels, name)
		s.Values = append(s.Values, totals[id])
	}
	return s, nil
}

// StockAlerts productos cuya bodega está por debajo del mínimo configurado.
func (uc *UseCase) StockAlerts(ctx context.Context) ([]Alert, error) {
	rows, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var alerts []Alert
	for _, r := range rows {
		if r.BelowMinimum() {
			alerts = append(alerts, Alert{ID: r.ID, Nombre: r.Nombre, Bodega: r.Bodega, StockMin: r.StockMin})
		}
	}
	return alerts, nil
}

// SalidaDates fechas de reporte con al menos una salida registrada.
func (uc *UseCase) SalidaDates(ctx context.Context) ([]time.Time, error) {
	return uc.movements.DistinctSalidaDates(ctx)
}
