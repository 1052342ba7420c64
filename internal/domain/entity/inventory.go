package entity

import "time"

// InventoryRecord es la cantidad de un producto en una bodega.
// Existe a lo sumo un registro por (bodega, producto) y Quantity nunca es negativa.
type InventoryRecord struct {
	ID          int64
	WarehouseID int64
	ProductID   int64
	Quantity    int64
	CreatedBy   int64
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Warehouse *Warehouse
	Product   *Product
}
