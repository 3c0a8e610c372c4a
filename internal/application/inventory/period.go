package inventory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// Estados del período de reporte.
const (
	EstadoAbierto  = "abierto"
	EstadoGuardado = "guardado"
)

// PeriodGate guarda el estado del período en memoria del proceso. Arranca
// abierto; Guardado lo bloquea y Revisado lo reabre.
type PeriodGate struct {
	mu     sync.Mutex
	locked bool
}

// NewPeriodGate devuelve un período abierto.
func NewPeriodGate() *PeriodGate {
	return &PeriodGate{}
}

// Locked indica si el período está cerrado a escrituras.
func (g *PeriodGate) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.locked
}

// Lock cierra el período. Devuelve false si ya estaba cerrado.
func (g *PeriodGate) Lock() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.locked {
		return false
	}
	g.locked = true
	return true
}

// Unlock reabre el período. Devuelve false si ya estaba abierto.
func (g *PeriodGate) Unlock() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.locked {
		return false
	}
	g.locked = false
	return true
}

// snapshotEntry es la copia de un producto dentro de la instantánea JSONB.
type snapshotEntry struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Bodega   int64  `json:"bodega"`
	Cocina   int64  `json:"cocina"`
	Total    int64  `json:"total"`
	StockMin int64  `json:"stock_min"`
	StockMax int64  `json:"stock_max"`
	Ingreso  int64  `json:"ingreso"`
	Salida   int64  `json:"salida"`
}

// PeriodUseCase implementa Guardado, Revisado y consulta de estado.
type PeriodUseCase struct {
	gate      *PeriodGate
	products  repository.ProductRepository
	snapshots repository.SnapshotRepository
	log       *logger.Logger
}

func NewPeriodUseCase(gate *PeriodGate, products repository.ProductRepository, snapshots repository.SnapshotRepository, log *logger.Logger) *PeriodUseCase {
	return &PeriodUseCase{gate: gate, products: products, snapshots: snapshots, log: log}
}

// Save congela el inventario: archiva una instantánea del listado completo
// bajo reportDate y cierra el período. Solo procede con el período abierto;
// una sola instantánea por fecha, con el índice único de la tabla respaldando
// la verificación previa ante carreras.
func (uc *PeriodUseCase) Save(ctx context.Context, reportDate time.Time, savedBy string) (*entity.Snapshot, error) {
	if uc.gate.Locked() {
		return nil, domain.ErrInventoryLocked
	}
	exists, err := uc.snapshots.ExistsByDate(ctx, reportDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicatePeriod
	}

	rows, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]snapshotEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, snapshotEntry{
			ID:       r.ID,
			Nombre:   r.Nombre,
			Bodega:   r.Bodega,
			Cocina:   r.Cocina,
			Total:    r.Total(),
			StockMin: r.StockMin,
			StockMax: r.StockMax,
			Ingreso:  r.Ingreso,
			Salida:   r.Salida,
		})
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	snap := &entity.Snapshot{
		ReportDate: reportDate,
		SavedBy:    savedBy,
		Snapshot:   payload,
	}
	if err := uc.snapshots.Create(ctx, snap); err != nil {
		return nil, err
	}

	uc.gate.Lock()
	uc.log.Info().
		Str("report_date", reportDate.Format(time.DateOnly)).
		Int("productos", len(entries)).
		Msg("inventario guardado")
	return snap, nil
}

// Review reabre el período tras la revisión: pone en cero los contadores de
// ingreso y salida de todos los productos. Requiere período cerrado.
func (uc *PeriodUseCase) Review(ctx context.Context) error {
	if !uc.gate.Locked() {
		return domain.ErrInventoryOpen
	}
	if err := uc.products.ResetCounters(ctx); err != nil {
		return err
	}
	uc.gate.Unlock()
	uc.log.Info().Msg("inventario revisado, período reabierto")
	return nil
}

// Estado devuelve el estado actual del período.
func (uc *PeriodUseCase) Estado() string {
	if uc.gate.Locked() {
		return EstadoGuardado
	}
	return EstadoAbierto
}
