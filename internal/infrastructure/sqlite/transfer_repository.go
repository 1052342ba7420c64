package sqlite

import (
	"context"
	"time"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo historial de traslados sobre SQLite.
type TransferRepo struct {
	q querier
}

// NewTransferRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewTransferRepository(q querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado y completa ID y fechas.
func (r *TransferRepo) Create(ctx context.Context, rec *entity.TransferRecord) error {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO historiales (cantidad, id_bodega_origen, id_bodega_destino, id_inventario, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Quantity, rec.SourceWarehouseID, rec.DestWarehouseID, rec.InventoryID, rec.CreatedBy,
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return wrapErr("insert transfer history", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrapErr("transfer history id", err)
	}
	rec.ID = id
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return nil
}

