package dto

// RegisterMovementRequest registro de un movimiento de stock.
// ReportDate en formato YYYY-MM-DD; si falta se usa la fecha actual.
type RegisterMovementRequest struct {
	Producto   string `json:"producto"`
	Tipo       string `json:"tipo"`
	Cantidad   int64  `json:"cantidad"`
	ReportDate string `json:"report_date"`
}

// MovementResponse estado del producto tras aplicar el movimiento.
type MovementResponse struct {
	Producto ProductResponse `json:"producto"`
	Tipo     string          `json:"tipo"`
	Cantidad int64           `json:"cantidad"`
}

// SaveInventoryRequest cierre de período (Guardado).
type SaveInventoryRequest struct {
	ReportDate string `json:"report_date"`
}

// PeriodStateResponse estado actual del período de reporte.
type PeriodStateResponse struct {
	Estado string `json:"estado"`
	Locked bool   `json:"locked"`
}
