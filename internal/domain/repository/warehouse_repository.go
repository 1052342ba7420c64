package repository

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	// GetActiveByID devuelve nil si la bodega no existe o fue eliminada.
	GetActiveByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	// ListActive lista bodegas activas ordenadas por nombre, con su responsable.
	ListActive(ctx context.Context) ([]*entity.Warehouse, error)
}
