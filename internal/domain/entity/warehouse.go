package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID            int64
	Name          string // máx. 30 caracteres
	ResponsibleID int64
	Active        bool
	CreatedBy     int64
	UpdatedBy     *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	// Responsible se carga solo en listados.
	Responsible *User
}
