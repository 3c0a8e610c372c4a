package inventory

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// --- fakes en memoria ---

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	resets   int
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
	for _, p := range products {
		cp := p
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		r.products[cp.ID] = &cp
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByNombreForUpdate(_ context.Context, nombre string) (*entity.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Nombre, nombre) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]repository.ProductRow, error) {
	rows := make([]repository.ProductRow, 0, len(r.products))
	for _, p := range r.products {
		rows = append(rows, repository.ProductRow{Product: *p})
	}
	return rows, nil
}

func (r *fakeProductRepo) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = p.Nombre
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, p *entity.Product) error {
	return r.Update(context.Background(), p)
}

func (r *fakeProductRepo) ResetCounters(_ context.Context) error {
	r.resets++
	for _, p := range r.products {
		p.Ingreso = 0
		p.Salida = 0
	}
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListSalidas(_ context.Context, start, end time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if !entity.IsSalida(m.MovementType) {
			continue
		}
		if m.ReportDate.Before(start) || m.ReportDate.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovementRepo) DistinctSalidaDates(_ context.Context) ([]time.Time, error) {
	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, m := range r.movements {
		if entity.IsSalida(m.MovementType) && !seen[m.ReportDate] {
			seen[m.ReportDate] = true
			out = append(out, m.ReportDate)
		}
	}
	return out, nil
}

type fakeSnapshotRepo struct {
	snapshots []*entity.Snapshot
}

func (r *fakeSnapshotRepo) ExistsByDate(_ context.Context, date time.Time) (bool, error) {
	for _, s := range r.snapshots {
		if s.ReportDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSnapshotRepo) Create(_ context.Context, s *entity.Snapshot) error {
	for _, prev := range r.snapshots {
		if prev.ReportDate.Equal(s.ReportDate) {
			return domain.ErrDuplicatePeriod
		}
	}
	s.ID = int64(len(r.snapshots) + 1)
	r.snapshots = append(r.snapshots, s)
	return nil
}

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	return fn(t.products, t.movements)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// --- registro de movimientos ---

func TestRegisterMovement_Tomate(t *testing.T) {
	products := newFakeProductRepo(entity.Product{ID: 1, Nombre: "Tomate", Bodega: 10, Cocina: 5})
	movements := &fakeMovementRepo{}
	gate := NewPeriodGate()
	uc := NewRegisterMovementUseCase(gate, &fakeTxRunner{products, movements}, testLogger())
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	p, err := uc.Execute(context.Background(), "Tomate", entity.MovementBodegaACocina, 4, "Ana Pérez", day)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Bodega)
	assert.Equal(t, int64(9), p.Cocina)
	assert.Zero(t, p.Ingreso)
	assert.Zero(t, p.Salida)

	p, err = uc.Execute(context.Background(), "Tomate", entity.MovementSalidaCocina, 3, "Ana Pérez", day)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Bodega)
	assert.Equal(t, int64(6), p.Cocina)
	assert.Equal(t, int64(3), p.Salida)

	require.Len(t, movements.movements, 2)
	assert.Equal(t, entity.MovementSalidaCocina, movements.movements[1].MovementType)
	assert.Equal(t, "Ana Pérez", movements.movements[1].MovedBy)
}

func TestRegisterMovement_NombreCaseInsensitive(t *testing.T) {
	products := newFakeProductRepo(entity.Product{ID: 1, Nombre: "Tomate", Bodega: 10})
	uc := NewRegisterMovementUseCase(NewPeriodGate(), &fakeTxRunner{products, &fakeMovementRepo{}}, testLogger())

	p, err := uc.Execute(context.Background(), "tomate", entity.MovementIngresoBodega, 2, "Ana", time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(12), p.Bodega)
}

func TestRegisterMovement_ProductoDesconocido(t *testing.T) {
	uc := NewRegisterMovementUseCase(NewPeriodGate(), &fakeTxRunner{newFakeProductRepo(), &fakeMovementRepo{}}, testLogger())

	_, err := uc.Execute(context.Background(), "Cebolla", entity.MovementIngresoBodega, 1, "Ana", time.Now())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_StockInsuficienteNoPersiste(t *testing.T) {
	products := newFakeProductRepo(entity.Product{ID: 1, Nombre: "Tomate", Bodega: 2})
	movements := &fakeMovementRepo{}
	uc := NewRegisterMovementUseCase(NewPeriodGate(), &fakeTxRunner{products, movements}, testLogger())

	_, err := uc.Execute(context.Background(), "Tomate", entity.MovementSalidaBodega, 5, "Ana", time.Now())

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, movements.movements)
	p, _ := products.GetByID(context.Background(), 1)
	assert.Equal(t, int64(2), p.Bodega)
}

func TestRegisterMovement_PeriodoCerrado(t *testing.T) {
	gate := NewPeriodGate()
	gate.Lock()
	uc := NewRegisterMovementUseCase(gate, &fakeTxRunner{newFakeProductRepo(), &fakeMovementRepo{}}, testLogger())

	_, err := uc.Execute(context.Background(), "Tomate", entity.MovementIngresoBodega, 1, "Ana", time.Now())

	assert.ErrorIs(t, err, domain.ErrInventoryLocked)
}

// --- guardado y revisado ---

func TestSave_CongelaInventario(t *testing.T) {
	products := newFakeProductRepo(
		entity.Product{ID: 1, Nombre: "Tomate", Bodega: 6, Cocina: 6, Salida: 3},
		entity.Product{ID: 2, Nombre: "Cebolla", Bodega: 4, StockMin: 5},
	)
	snapshots := &fakeSnapshotRepo{}
	gate := NewPeriodGate()
	uc := NewPeriodUseCase(gate, products, snapshots, testLogger())
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	snap, err := uc.Save(context.Background(), day, "Ana Pérez")

	require.NoError(t, err)
	assert.True(t, gate.Locked())
	assert.Equal(t, EstadoGuardado, uc.Estado())

	var entries []snapshotEntry
	require.NoError(t, json.Unmarshal(snap.Snapshot, &entries))
	assert.Len(t, entries, 2)
}

func TestSave_FechaDuplicada(t *testing.T) {
	snapshots := &fakeSnapshotRepo{}
	gate := NewPeriodGate()
	uc := NewPeriodUseCase(gate, newFakeProductRepo(), snapshots, testLogger())
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Save(context.Background(), day, "Ana")
	require.NoError(t, err)

	// El período se reabre tras la revisión, pero la fecha ya tiene instantánea.
	require.NoError(t, uc.Review(context.Background()))

	_, err = uc.Save(context.Background(), day, "Ana")
	assert.ErrorIs(t, err, domain.ErrDuplicatePeriod)
	assert.False(t, gate.Locked())
	assert.Len(t, snapshots.snapshots, 1)
}

func TestSave_PeriodoCerrado(t *testing.T) {
	snapshots := &fakeSnapshotRepo{}
	gate := NewPeriodGate()
	uc := NewPeriodUseCase(gate, newFakeProductRepo(), snapshots, testLogger())

	_, err := uc.Save(context.Background(), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "Ana")
	require.NoError(t, err)

	// Con el candado puesto, ni siquiera otra fecha puede guardarse.
	_, err = uc.Save(context.Background(), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), "Ana")
	assert.ErrorIs(t, err, domain.ErrInventoryLocked)
	assert.Len(t, snapshots.snapshots, 1)
	assert.True(t, gate.Locked())
}

func TestReview_ReiniciaContadoresYReabre(t *testing.T) {
	products := newFakeProductRepo(
		entity.Product{ID: 1, Nombre: "Tomate", Bodega: 6, Ingreso: 8, Salida: 3},
	)
	gate := NewPeriodGate()
	gate.Lock()
	uc := NewPeriodUseCase(gate, products, &fakeSnapshotRepo{}, testLogger())

	require.NoError(t, uc.Review(context.Background()))

	assert.False(t, gate.Locked())
	assert.Equal(t, EstadoAbierto, uc.Estado())
	p, _ := products.GetByID(context.Background(), 1)
	assert.Zero(t, p.Ingreso)
	assert.Zero(t, p.Salida)
	assert.Equal(t, int64(6), p.Bodega)
}

func TestReview_PeriodoAbierto(t *testing.T) {
	uc := NewPeriodUseCase(NewPeriodGate(), newFakeProductRepo(), &fakeSnapshotRepo{}, testLogger())

	err := uc.Review(context.Background())

	assert.ErrorIs(t, err, domain.ErrInventoryOpen)
}
