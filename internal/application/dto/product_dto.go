package dto

// CreateProductRequest alta de producto. Los contadores nacen en cero.
type CreateProductRequest struct {
	Nombre   string `json:"nombre"`
	Bodega   int64  `json:"bodega"`
	Cocina   int64  `json:"cocina"`
	StockMin int64  `json:"stock_min"`
	StockMax int64  `json:"stock_max"`
}

// UpdateProductRequest edición directa de ficha y stock base.
type UpdateProductRequest struct {
	Nombre   string `json:"nombre"`
	Bodega   int64  `json:"bodega"`
	Cocina   int64  `json:"cocina"`
	StockMin int64  `json:"stock_min"`
	StockMax int64  `json:"stock_max"`
}

// ProductResponse fila del listado de inventario.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Bodega      int64  `json:"bodega"`
	Cocina      int64  `json:"cocina"`
	Total       int64  `json:"total"`
	StockMin    int64  `json:"stock_min"`
	StockMax    int64  `json:"stock_max"`
	Ingreso     int64  `json:"ingreso"`
	Salida      int64  `json:"salida"`
	Responsable string `json:"responsable,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

// ProductListResponse listado completo más la última hora de edición.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	LastUpdate string            `json:"last_update,omitempty"`
}
