// Package inventory contiene las reglas puras del movimiento de stock:
// aritmética de bodega/cocina y contadores, sin persistencia ni transporte.
package inventory

import (
	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
)

// Apply aplica un movimiento sobre una copia del producto y devuelve el estado
// resultante. La entrada no se modifica: si la validación falla el producto
// persistido queda intacto.
//
// Orden de validación: primero cantidad positiva y tipo conocido, luego stock
// suficiente en la ubicación de origen. Las transferencias internas
// (bodega-a-cocina) no tocan los contadores de ingreso/salida.
func Apply(p entity.Product, movementType string, qty int64) (entity.Product, error) {
	if qty <= 0 {
		return entity.Product{}, domain.ErrInvalidInput
	}
	switch movementType {
	case entity.MovementIngresoBodega:
		p.Bodega += qty
		p.Ingreso += qty
	case entity.MovementIngresoCocina:
		p.Cocina += qty
		p.Ingreso += qty
	case entity.MovementBodegaACocina:
		if p.Bodega < qty {
			return entity.Product{}, domain.ErrInsufficientStock
		}
		p.Bodega -= qty
		p.Cocina += qty
	case entity.MovementSalidaBodega:
		if p.Bodega < qty {
			return entity.Product{}, domain.ErrInsufficientStock
		}
		p.Bodega -= qty
		p.Salida += qty
	case entity.MovementSalidaCocina:
		if p.Cocina < qty {
			return entity.Product{}, domain.ErrInsufficientStock
		}
		p.Cocina -= qty
		p.Salida += qty
	default:
		return entity.Product{}, domain.ErrInvalidInput
	}
	return p, nil
}
