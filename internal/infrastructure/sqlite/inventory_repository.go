package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, id_bodega, id_producto, cantidad, created_by, updated_by, created_at, updated_at`

// InventoryRepo implementación de InventoryRepository sobre SQLite.
type InventoryRepo struct {
	q querier
}

// NewInventoryRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewInventoryRepository(q querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate lee la fila. Dentro de Store.Run la conexión única ya excluye a otros escritores.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, warehouseID, productID int64) (*entity.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventarios WHERE id_bodega = ? AND id_producto = ?`
	rec, err := scanInventory(r.q.QueryRowContext(ctx, query, warehouseID, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get inventory for update", err)
	}
	return rec, nil
}

// Increment suma delta a la fila existente o la inserta.
func (r *InventoryRepo) Increment(ctx context.Context, warehouseID, productID, delta, actorID int64) (*entity.InventoryRecord, bool, error) {
	now := formatTime(time.Now())
	update := `
		UPDATE inventarios SET cantidad = cantidad + ?, updated_by = ?, updated_at = ?
		WHERE id_bodega = ? AND id_producto = ?
		RETURNING ` + inventoryColumns
	rec, err := scanInventory(r.q.QueryRowContext(ctx, update, delta, actorID, now, warehouseID, productID))
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, wrapErr("increment inventory", err)
	}

	insert := `
		INSERT INTO inventarios (id_bodega, id_producto, cantidad, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + inventoryColumns
	rec, err = scanInventory(r.q.QueryRowContext(ctx, insert, warehouseID, productID, delta, actorID, now, now))
	if err != nil {
		return nil, false, wrapErr("insert inventory", err)
	}
	return rec, true, nil
}

// Decrement resta delta solo si la cantidad alcanza.
func (r *InventoryRepo) Decrement(ctx context.Context, id, delta, actorID int64) (*entity.InventoryRecord, error) {
	query := `
		UPDATE inventarios SET cantidad = cantidad - ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND cantidad >= ?
		RETURNING ` + inventoryColumns
	rec, err := scanInventory(r.q.QueryRowContext(ctx, query, delta, actorID, formatTime(time.Now()), id, delta))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("decrement inventory %d: %w", id, domain.ErrConflict)
		}
		return nil, wrapErr("decrement inventory", err)
	}
	return rec, nil
}

func scanInventory(row *sql.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.WarehouseID, &rec.ProductID, &rec.Quantity,
		&rec.CreatedBy, &rec.UpdatedBy, timeCol{&rec.CreatedAt}, timeCol{&rec.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
