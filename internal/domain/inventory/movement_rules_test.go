package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
)

func TestApply_IngresoBodega(t *testing.T) {
	p := entity.Product{Nombre: "Tomate", Bodega: 10, Cocina: 5, Ingreso: 2, Salida: 1}

	got, err := Apply(p, entity.MovementIngresoBodega, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(17), got.Bodega)
	assert.Equal(t, int64(5), got.Cocina)
	assert.Equal(t, int64(9), got.Ingreso)
	assert.Equal(t, int64(1), got.Salida)
}

func TestApply_IngresoCocina(t *testing.T) {
	p := entity.Product{Bodega: 10, Cocina: 5}

	got, err := Apply(p, entity.MovementIngresoCocina, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Bodega)
	assert.Equal(t, int64(8), got.Cocina)
	assert.Equal(t, int64(3), got.Ingreso)
	assert.Zero(t, got.Salida)
}

func TestApply_TransferenciaNoTocaContadores(t *testing.T) {
	p := entity.Product{Bodega: 10, Cocina: 5, Ingreso: 4, Salida: 2}

	got, err := Apply(p, entity.MovementBodegaACocina, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Bodega)
	assert.Equal(t, int64(11), got.Cocina)
	// El total se conserva en una transferencia interna.
	assert.Equal(t, p.Total(), got.Total())
	assert.Equal(t, int64(4), got.Ingreso)
	assert.Equal(t, int64(2), got.Salida)
}

func TestApply_SalidaBodega(t *testing.T) {
	p := entity.Product{Bodega: 10, Cocina: 5, Salida: 1}

	got, err := Apply(p, entity.MovementSalidaBodega, 10)

	require.NoError(t, err)
	assert.Zero(t, got.Bodega)
	assert.Equal(t, int64(11), got.Salida)
}

func TestApply_SalidaCocina(t *testing.T) {
	p := entity.Product{Bodega: 10, Cocina: 5}

	got, err := Apply(p, entity.MovementSalidaCocina, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Cocina)
	assert.Equal(t, int64(2), got.Salida)
}

func TestApply_StockInsuficiente(t *testing.T) {
	cases := []struct {
		name string
		tipo string
	}{
		{"bodega a cocina", entity.MovementBodegaACocina},
		{"salida bodega", entity.MovementSalidaBodega},
		{"salida cocina", entity.MovementSalidaCocina},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{Bodega: 3, Cocina: 3}

			_, err := Apply(p, tc.tipo, 4)

			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		})
	}
}

func TestApply_CantidadInvalida(t *testing.T) {
	p := entity.Product{Bodega: 10}

	_, err := Apply(p, entity.MovementIngresoBodega, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Apply(p, entity.MovementIngresoBodega, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_TipoDesconocido(t *testing.T) {
	_, err := Apply(entity.Product{Bodega: 10}, "traslado-magico", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_NoMutaLaEntrada(t *testing.T) {
	p := entity.Product{Bodega: 10, Cocina: 5}

	_, err := Apply(p, entity.MovementSalidaBodega, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Bodega)
	assert.Equal(t, int64(5), p.Cocina)
}
