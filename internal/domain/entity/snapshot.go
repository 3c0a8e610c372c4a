package entity

import (
	"encoding/json"
	"time"
)

// Snapshot es la instantánea completa del inventario al cierre de un período.
// Append-only, a lo sumo una por report_date.
type Snapshot struct {
	ID         int64           `json:"id"`
	ReportDate time.Time       `json:"report_date"`
	SavedBy    string          `json:"saved_by"`
	Snapshot   json.RawMessage `json:"snapshot"` // copia de todos los productos al guardar
	CreatedAt  time.Time       `json:"created_at"`
}
