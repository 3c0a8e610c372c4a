package entity

import "time"

// Product es una fila del inventario de la cocina. El stock vive repartido en
// dos ubicaciones fijas (bodega y cocina); Ingreso y Salida son contadores
// acumulados del período en curso y se reinician con el Revisado.
type Product struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Bodega    int64     `json:"bodega"`
	Cocina    int64     `json:"cocina"`
	StockMin  int64     `json:"stock_min"`
	StockMax  int64     `json:"stock_max"`
	Ingreso   int64     `json:"ingreso"`
	Salida    int64     `json:"salida"`
	UpdatedBy string    `json:"updated_by"` // UUID del último editor
	UpdatedAt time.Time `json:"updated_at"`
}

// Total devuelve el stock combinado bodega + cocina.
func (p Product) Total() int64 { return p.Bodega + p.Cocina }

// BelowMinimum indica si el producto dispara la alerta de stock (bodega por
// debajo del mínimo configurado).
func (p Product) BelowMinimum() bool { return p.Bodega < p.StockMin }
