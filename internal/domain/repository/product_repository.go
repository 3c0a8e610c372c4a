package repository

import (
	"context"

	"github.com/alaire/inventario-api/internal/domain/entity"
)

// ProductRow es una fila del listado: el producto más el nombre completo del
// último editor (join contra users).
type ProductRow struct {
	entity.Product
	Responsable string
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByNombreForUpdate busca por nombre exacto case-insensitive y bloquea
	// la fila (SELECT FOR UPDATE) cuando corre dentro de una transacción.
	GetByNombreForUpdate(ctx context.Context, nombre string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por nombre ascendente.
	List(ctx context.Context) ([]ProductRow, error)
	// NamesByIDs resuelve nombres para el agregador de reportes.
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	// Update reemplaza nombre/bodega/cocina/min/max. No toca contadores.
	Update(ctx context.Context, p *entity.Product) error
	// UpdateStock persiste el resultado de un movimiento: bodega, cocina,
	// contadores, updated_by y updated_at.
	UpdateStock(ctx context.Context, p *entity.Product) error
	// ResetCounters pone ingreso=0 y salida=0 en TODOS los productos (Revisado).
	ResetCounters(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
}
