package entity

import "time"

// Product representa un producto del catálogo. El motor de inventario solo lo lee.
type Product struct {
	ID          int64
	Name        string  // máx. 50 caracteres
	Description *string // opcional, máx. 300 caracteres
	Active      bool
	CreatedBy   int64
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
