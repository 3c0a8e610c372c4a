package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	rules "github.com/alaire/inventario-api/internal/domain/inventory"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

// RegisterMovementUseCase registra un movimiento de stock de forma atómica:
// lee el producto con bloqueo de fila, aplica la aritmética y persiste el
// nuevo estado junto con la fila de historial en la misma transacción.
type RegisterMovementUseCase struct {
	gate     *PeriodGate
	txRunner TxRunner
	log      *logger.Logger
}

func NewRegisterMovementUseCase(gate *PeriodGate, txRunner TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{gate: gate, txRunner: txRunner, log: log}
}

// Execute valida y aplica el movimiento. Devuelve el producto actualizado.
func (uc *RegisterMovementUseCase) Execute(ctx context.Context, producto, tipo string, cantidad int64, movedBy string, reportDate time.Time) (*entity.Product, error) {
	if uc.gate.Locked() {
		return nil, domain.ErrInventoryLocked
	}
	producto = strings.TrimSpace(producto)
	if producto == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		p, err := products.GetByNombreForUpdate(ctx, producto)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrInvalidInput
		}

		next, err := rules.Apply(*p, tipo, cantidad)
		if err != nil {
			return err
		}
		next.UpdatedBy = movedBy
		next.UpdatedAt = time.Now()
		if err := products.UpdateStock(ctx, &next); err != nil {
			return err
		}

		mov := &entity.Movement{
			ProductID:    next.ID,
			MovementType: tipo,
			Quantity:     cantidad,
			MovedBy:      movedBy,
			ReportDate:   reportDate,
		}
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("producto", updated.Nombre).
		Str("tipo", tipo).
		Int64("cantidad", cantidad).
		Str("report_date", reportDate.Format(time.DateOnly)).
		Msg("movimiento registrado")
	return updated, nil
}
