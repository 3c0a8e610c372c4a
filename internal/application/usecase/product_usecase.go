// Package usecase agrupa los casos de uso de catálogo y administración:
// productos, roles y usuarios.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/alaire/inventario-api/internal/application/inventory"
	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// ProductUseCase gestiona el catálogo de productos. Las escrituras directas
// (editar, borrar) respetan el cierre de período; el alta siempre se permite.
type ProductUseCase struct {
	repo repository.ProductRepository
	gate *inventory.PeriodGate
	log  *logger.Logger
}

func NewProductUseCase(repo repository.ProductRepository, gate *inventory.PeriodGate, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, gate: gate, log: log}
}

// Create da de alta un producto. Los contadores de período nacen en cero.
func (uc *ProductUseCase) Create(ctx context.Context, nombre string, bodega, cocina, stockMin, stockMax int64, createdBy string) (*entity.Product, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" || bodega < 0 || cocina < 0 || stockMin < 0 || stockMax < 0 {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		Nombre:    nombre,
		Bodega:    bodega,
		Cocina:    cocina,
		StockMin:  stockMin,
		StockMax:  stockMax,
		UpdatedBy: createdBy,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("nombre", p.Nombre).Int64("id", p.ID).Msg("producto creado")
	return p, nil
}

// ListResult listado filtrado más la marca de última edición.
type ListResult struct {
	Products   []repository.ProductRow
	LastUpdate time.Time
}

// List devuelve los productos ordenados por nombre. q filtra por subcadena
// del nombre sin distinguir mayúsculas; LastUpdate es el máximo updated_at
// del catálogo completo, no del filtro.
func (uc *ProductUseCase) List(ctx context.Context, q string) (*ListResult, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := &ListResult{}
	q = strings.ToLower(strings.TrimSpace(q))
	for _, r := range rows {
		if r.UpdatedAt.After(res.LastUpdate) {
			res.LastUpdate = r.UpdatedAt
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Nombre), q) {
			continue
		}
		res.Products = append(res.Products, r)
	}
	return res, nil
}

// Update edita ficha y stock base de un producto. Bloqueado con período cerrado.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, nombre string, bodega, cocina, stockMin, stockMax int64, updatedBy string) (*entity.Product, error) {
	if uc.gate.Locked() {
		return nil, domain.ErrInventoryLocked
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" || bodega < 0 || cocina < 0 || stockMin < 0 || stockMax < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Nombre = nombre
	p.Bodega = bodega
	p.Cocina = cocina
	p.StockMin = stockMin
	p.StockMax = stockMax
	p.UpdatedBy = updatedBy
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete elimina un producto. Bloqueado con período cerrado.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if uc.gate.Locked() {
		return domain.ErrInventoryLocked
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return nil
}
