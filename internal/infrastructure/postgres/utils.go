package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/bodegas-api/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// wrapErr anota el error con la operación. Las violaciones de integridad (cantidad negativa,
// referencia borrada durante la transacción) se reportan como domain.ErrConflict.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeCheckViolation, codeForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrConflict, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
