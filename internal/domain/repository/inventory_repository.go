package repository

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// InventoryRepository define el puerto para el libro de inventario por (bodega, producto).
// Se usa dentro de transacciones; las implementaciones deben serializar escrituras sobre la misma fila.
type InventoryRepository interface {
	// GetForUpdate obtiene la fila y la bloquea hasta el fin de la transacción. nil si no existe.
	GetForUpdate(ctx context.Context, warehouseID, productID int64) (*entity.InventoryRecord, error)
	// Increment suma delta a la fila o la crea con cantidad delta, en una sola escritura.
	// created indica si la fila fue insertada.
	Increment(ctx context.Context, warehouseID, productID, delta, actorID int64) (rec *entity.InventoryRecord, created bool, err error)
	// Decrement resta delta de la fila id. Devuelve domain.ErrConflict si la cantidad quedaría negativa.
	Decrement(ctx context.Context, id, delta, actorID int64) (*entity.InventoryRecord, error)
}
