package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo archivo de instantáneas sobre PostgreSQL.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// ExistsByDate indica si ya hay una instantánea para la fecha.
func (r *SnapshotRepo) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM inventory_snapshots WHERE report_date = $1)`, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists snapshot: %w", err)
	}
	return exists, nil
}

// Create inserta la instantánea. El índice único sobre report_date convierte
// la carrera entre dos guardados simultáneos en ErrDuplicatePeriod.
func (r *SnapshotRepo) Create(ctx context.Context, s *entity.Snapshot) error {
	query := `
		INSERT INTO inventory_snapshots (report_date, saved_by, snapshot)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, s.ReportDate, s.SavedBy, s.Snapshot).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePeriod
		}
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}
