package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodegas-api/internal/domain"
)

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"check violation", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "inventarios_cantidad_check"}, true},
		{"foreign key", &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "inventarios_id_bodega_fkey"}, true},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, false},
		{"conexión", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapErr("increment inventory", tt.err)
			assert.Equal(t, tt.conflict, errors.Is(err, domain.ErrConflict))
			assert.Contains(t, err.Error(), "increment inventory: ")
			if !tt.conflict {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
