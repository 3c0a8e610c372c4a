package entity

import (
	"strings"
	"time"
)

// Tipos de movimiento. Mismos valores que persiste la columna movement_type.
const (
	MovementIngresoBodega = "ingreso-bodega"
	MovementIngresoCocina = "ingreso-cocina"
	MovementBodegaACocina = "bodega-a-cocina"
	MovementSalidaBodega  = "salida-bodega"
	MovementSalidaCocina  = "salida-cocina"
)

// IsSalida indica si el tipo descuenta stock hacia afuera (consumo).
func IsSalida(movementType string) bool {
	return strings.HasPrefix(movementType, "salida")
}

// Movement es un registro append-only del historial: nunca se actualiza ni se
// borra, y se crea exactamente una vez por movimiento aceptado.
type Movement struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	MovedBy      string    `json:"moved_by"`
	ReportDate   time.Time `json:"report_date"` // fecha lógica del período, no la de creación
	CreatedAt    time.Time `json:"created_at"`
}
