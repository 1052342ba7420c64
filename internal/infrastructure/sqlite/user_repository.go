package sqlite

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo consulta la tabla users solo por llave primaria.
type UserRepo struct {
	q querier
}

// NewUserRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewUserRepository(q querier) *UserRepo {
	return &UserRepo{q: q}
}

// Exists indica si existe un usuario con ese ID.
func (r *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, id).Scan(&ok); err != nil {
		return false, wrapErr("check user", err)
	}
	return ok, nil
}
