// Package inventory orquesta el ciclo de vida del inventario: registro de
// movimientos, cierre de período (Guardado) y revisión (Revisado).
package inventory

import (
	"context"

	"github.com/alaire/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que recibe
// fn están ligados a esa transacción: si fn devuelve error se hace rollback,
// en caso contrario commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, movements repository.MovementRepository) error) error
}
