package repository

import (
	"context"
	"time"

	"github.com/alaire/inventario-api/internal/domain/entity"
)

// SnapshotRepository puerto del archivo de instantáneas (append-only, una por fecha).
type SnapshotRepository interface {
	ExistsByDate(ctx context.Context, date time.Time) (bool, error)
	Create(ctx context.Context, s *entity.Snapshot) error
}
