package repository

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// ProductStock producto activo con la suma de su inventario en todas las bodegas.
type ProductStock struct {
	Product entity.Product
	Total   int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// GetActiveByID devuelve nil si el producto no existe o fue eliminado.
	GetActiveByID(ctx context.Context, id int64) (*entity.Product, error)
	// ListWithTotals lista productos activos ordenados por stock total descendente.
	ListWithTotals(ctx context.Context) ([]ProductStock, error)
}
