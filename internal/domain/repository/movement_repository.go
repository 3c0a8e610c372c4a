package repository

import (
	"context"
	"time"

	"github.com/alaire/inventario-api/internal/domain/entity"
)

// MovementRepository puerto del historial de movimientos (append-only).
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	// ListSalidas devuelve los movimientos de tipo salida-* cuyo report_date
	// cae en el rango inclusivo [start, end], en orden de creación.
	ListSalidas(ctx context.Context, start, end time.Time) ([]*entity.Movement, error)
	// DistinctSalidaDates devuelve las fechas de reporte con al menos una salida.
	DistinctSalidaDates(ctx context.Context) ([]time.Time, error)
}
