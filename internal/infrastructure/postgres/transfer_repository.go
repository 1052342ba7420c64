package postgres

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo historial de traslados sobre PostgreSQL (tabla historiales).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado y completa ID y fechas.
func (r *TransferRepo) Create(ctx context.Context, rec *entity.TransferRecord) error {
	query := `
		INSERT INTO historiales (cantidad, id_bodega_origen, id_bodega_destino, id_inventario, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		rec.Quantity, rec.SourceWarehouseID, rec.DestWarehouseID, rec.InventoryID, rec.CreatedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return wrapErr("insert transfer history", err)
	}
	return nil
}
