package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.nombre, p.descripcion, p.estado, p.created_by, p.updated_by, p.created_at, p.updated_at, p.deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetActiveByID obtiene un producto no eliminado por ID.
func (r *ProductRepo) GetActiveByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos p WHERE p.id = $1 AND p.deleted_at IS NULL`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(productDest(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product", err)
	}
	return &p, nil
}

// ListWithTotals lista productos activos con la suma de su inventario, mayor total primero.
func (r *ProductRepo) ListWithTotals(ctx context.Context) ([]repository.ProductStock, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(SUM(i.cantidad), 0)::bigint AS total
		FROM productos p
		LEFT JOIN inventarios i ON i.id_producto = p.id
		WHERE p.deleted_at IS NULL
		GROUP BY p.id
		ORDER BY total DESC, p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list products", err)
	}
	defer rows.Close()
	var list []repository.ProductStock
	for rows.Next() {
		var ps repository.ProductStock
		if err := rows.Scan(append(productDest(&ps.Product), &ps.Total)...); err != nil {
			return nil, wrapErr("scan product", err)
		}
		list = append(list, ps)
	}
	return list, rows.Err()
}

func productDest(p *entity.Product) []any {
	return []any{
		&p.ID, &p.Name, &p.Description, &p.Active,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	}
}
