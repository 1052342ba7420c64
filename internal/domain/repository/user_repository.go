package repository

import "context"

// UserRepository consulta de existencia de usuarios (la identidad es externa).
type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
