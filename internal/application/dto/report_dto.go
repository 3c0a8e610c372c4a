package dto

// SalidasReportResponse series paralelas etiqueta/valor para graficar salidas.
type SalidasReportResponse struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// StockAlertResponse producto con bodega por debajo del mínimo.
type StockAlertResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Bodega   int64  `json:"bodega"`
	StockMin int64  `json:"stock_min"`
}

// SalidaDatesResponse fechas de reporte que registran salidas.
type SalidaDatesResponse struct {
	Fechas []string `json:"fechas"`
}
