package entity

import "time"

// TransferRecord es la entrada inmutable del historial de traslados.
// InventoryID referencia el inventario de la bodega origen.
type TransferRecord struct {
	ID                int64
	Quantity          int64
	SourceWarehouseID int64
	DestWarehouseID   int64
	InventoryID       int64
	CreatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time

	SourceWarehouse *Warehouse
	DestWarehouse   *Warehouse
	Inventory       *InventoryRecord
}
