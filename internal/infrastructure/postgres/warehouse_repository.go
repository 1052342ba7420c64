package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `b.id, b.nombre, b.id_responsable, b.estado, b.created_by, b.updated_by, b.created_at, b.updated_at, b.deleted_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// GetActiveByID obtiene una bodega no eliminada por ID.
func (r *WarehouseRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM bodegas b WHERE b.id = $1 AND b.deleted_at IS NULL`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(warehouseDest(&w)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get warehouse", err)
	}
	return &w, nil
}

// ListActive lista bodegas activas ordenadas por nombre con su responsable (id, name, email).
func (r *WarehouseRepo) ListActive(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `, u.id, u.name, u.email
		FROM bodegas b
		LEFT JOIN users u ON u.id = b.id_responsable
		WHERE b.deleted_at IS NULL
		ORDER BY b.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list warehouses", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var (
			w                  entity.Warehouse
			userID             *int64
			userName, userMail *string
		)
		if err := rows.Scan(append(warehouseDest(&w), &userID, &userName, &userMail)...); err != nil {
			return nil, wrapErr("scan warehouse", err)
		}
		if userID != nil {
			w.Responsible = &entity.User{ID: *userID, Name: deref(userName), Email: deref(userMail)}
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

func warehouseDest(w *entity.Warehouse) []any {
	return []any{
		&w.ID, &w.Name, &w.ResponsibleID, &w.Active,
		&w.CreatedBy, &w.UpdatedBy, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
