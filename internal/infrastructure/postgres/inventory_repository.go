package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, id_bodega, id_producto, cantidad, created_by, updated_by, created_at, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene el inventario y bloquea la fila para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, warehouseID, productID int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + `
		FROM inventarios WHERE id_bodega = $1 AND id_producto = $2
		FOR UPDATE`
	rec, err := scanInventory(r.q.QueryRow(ctx, query, warehouseID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get inventory for update", err)
	}
	return rec, nil
}

// Increment inserta la fila o suma delta a la existente en una sola sentencia.
// xmax = 0 solo es cierto para la tupla recién insertada.
func (r *InventoryRepo) Increment(ctx context.Context, warehouseID, productID, delta, actorID int64) (*entity.InventoryRecord, bool, error) {
	query := `
		INSERT INTO inventarios (id_bodega, id_producto, cantidad, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (id_bodega, id_producto)
		DO UPDATE SET cantidad = inventarios.cantidad + EXCLUDED.cantidad,
		              updated_by = EXCLUDED.created_by,
		              updated_at = now()
		RETURNING ` + inventoryColumns + `, (xmax = 0) AS inserted`
	var inserted bool
	rec, err := scanInventory(r.q.QueryRow(ctx, query, warehouseID, productID, delta, actorID), &inserted)
	if err != nil {
		return nil, false, wrapErr("increment inventory", err)
	}
	return rec, inserted, nil
}

// Decrement resta delta solo si la cantidad alcanza; nunca deja la fila en negativo.
func (r *InventoryRepo) Decrement(ctx context.Context, id, delta, actorID int64) (*entity.InventoryRecord, error) {
	query := `
		UPDATE inventarios
		SET cantidad = cantidad - $2, updated_by = $3, updated_at = now()
		WHERE id = $1 AND cantidad >= $2
		RETURNING ` + inventoryColumns
	rec, err := scanInventory(r.q.QueryRow(ctx, query, id, delta, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("decrement inventory %d: %w", id, domain.ErrConflict)
		}
		return nil, wrapErr("decrement inventory", err)
	}
	return rec, nil
}

func scanInventory(row pgx.Row, extra ...any) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	dest := []any{
		&rec.ID, &rec.WarehouseID, &rec.ProductID, &rec.Quantity,
		&rec.CreatedBy, &rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &rec, nil
}
