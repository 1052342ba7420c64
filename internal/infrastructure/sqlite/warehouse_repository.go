package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `b.id, b.nombre, b.id_responsable, b.estado, b.created_by, b.updated_by, b.created_at, b.updated_at, b.deleted_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre SQLite.
type WarehouseRepo struct {
	q querier
}

// NewWarehouseRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewWarehouseRepository(q querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetActiveByID obtiene una bodega no eliminada por ID.
func (r *WarehouseRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM bodegas b WHERE b.id = ? AND b.deleted_at IS NULL`
	var w entity.Warehouse
	if err := r.q.QueryRowContext(ctx, query, id).Scan(warehouseDest(&w)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get warehouse", err)
	}
	return &w, nil
}

// ListActive lista bodegas activas ordenadas por nombre con su responsable.
func (r *WarehouseRepo) ListActive(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `, u.id, u.name, u.email
		FROM bodegas b
		LEFT JOIN users u ON u.id = b.id_responsable
		WHERE b.deleted_at IS NULL
		ORDER BY b.nombre`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("list warehouses", err)
	}
	defer func() { _ = rows.Close() }()
	var list []*entity.Warehouse
	for rows.Next() {
		var (
			w        entity.Warehouse
			userID   sql.NullInt64
			userName sql.NullString
			userMail sql.NullString
		)
		if err := rows.Scan(append(warehouseDest(&w), &userID, &userName, &userMail)...); err != nil {
			return nil, wrapErr("scan warehouse", err)
		}
		if userID.Valid {
			w.Responsible = &entity.User{ID: userID.Int64, Name: userName.String, Email: userMail.String}
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

func warehouseDest(w *entity.Warehouse) []any {
	return []any{
		&w.ID, &w.Name, &w.ResponsibleID, &w.Active,
		&w.CreatedBy, &w.UpdatedBy, timeCol{&w.CreatedAt}, timeCol{&w.UpdatedAt}, nullTimeCol{&w.DeletedAt},
	}
}
