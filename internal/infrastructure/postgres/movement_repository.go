package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta una fila de historial.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO product_movements (product_id, movement_type, quantity, moved_by, report_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.MovementType, m.Quantity, m.MovedBy, m.ReportDate,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListSalidas movimientos salida-* con report_date en [start, end], por orden de creación.
func (r *MovementRepo) ListSalidas(ctx context.Context, start, end time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, moved_by, report_date, created_at
		FROM product_movements
		WHERE movement_type LIKE 'salida%' AND report_date BETWEEN $1 AND $2
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity, &m.MovedBy, &m.ReportDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DistinctSalidaDates fechas de reporte con al menos una salida, descendente.
func (r *MovementRepo) DistinctSalidaDates(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT DISTINCT report_date
		FROM product_movements
		WHERE movement_type LIKE 'salida%'
		ORDER BY report_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct salida dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
