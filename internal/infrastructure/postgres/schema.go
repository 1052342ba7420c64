package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema tablas del libro de inventario. Idempotente.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id    BIGSERIAL PRIMARY KEY,
	name  VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS productos (
	id          BIGSERIAL PRIMARY KEY,
	nombre      VARCHAR(50) NOT NULL,
	descripcion VARCHAR(300),
	estado      BOOLEAN NOT NULL DEFAULT TRUE,
	created_by  BIGINT NOT NULL REFERENCES users (id),
	updated_by  BIGINT REFERENCES users (id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS bodegas (
	id             BIGSERIAL PRIMARY KEY,
	nombre         VARCHAR(30) NOT NULL,
	id_responsable BIGINT NOT NULL REFERENCES users (id),
	estado         BOOLEAN NOT NULL DEFAULT TRUE,
	created_by     BIGINT NOT NULL REFERENCES users (id),
	updated_by     BIGINT REFERENCES users (id),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS inventarios (
	id          BIGSERIAL PRIMARY KEY,
	id_bodega   BIGINT NOT NULL REFERENCES bodegas (id),
	id_producto BIGINT NOT NULL REFERENCES productos (id),
	cantidad    BIGINT NOT NULL CHECK (cantidad >= 0),
	created_by  BIGINT NOT NULL REFERENCES users (id),
	updated_by  BIGINT REFERENCES users (id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (id_bodega, id_producto)
);

CREATE TABLE IF NOT EXISTS historiales (
	id                BIGSERIAL PRIMARY KEY,
	cantidad          BIGINT NOT NULL CHECK (cantidad > 0),
	id_bodega_origen  BIGINT NOT NULL REFERENCES bodegas (id),
	id_bodega_destino BIGINT NOT NULL REFERENCES bodegas (id),
	id_inventario     BIGINT NOT NULL REFERENCES inventarios (id),
	created_by        BIGINT NOT NULL REFERENCES users (id),
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
