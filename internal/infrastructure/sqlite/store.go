package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS productos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre      TEXT NOT NULL CHECK (length(nombre) <= 50),
	descripcion TEXT CHECK (descripcion IS NULL OR length(descripcion) <= 300),
	estado      INTEGER NOT NULL DEFAULT 1,
	created_by  INTEGER NOT NULL REFERENCES users (id),
	updated_by  INTEGER REFERENCES users (id),
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	deleted_at  TEXT
);

CREATE TABLE IF NOT EXISTS bodegas (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre         TEXT NOT NULL CHECK (length(nombre) <= 30),
	id_responsable INTEGER NOT NULL REFERENCES users (id),
	estado         INTEGER NOT NULL DEFAULT 1,
	created_by     INTEGER NOT NULL REFERENCES users (id),
	updated_by     INTEGER REFERENCES users (id),
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL,
	deleted_at     TEXT
);

CREATE TABLE IF NOT EXISTS inventarios (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	id_bodega   INTEGER NOT NULL REFERENCES bodegas (id),
	id_producto INTEGER NOT NULL REFERENCES productos (id),
	cantidad    INTEGER NOT NULL CHECK (cantidad >= 0),
	created_by  INTEGER NOT NULL REFERENCES users (id),
	updated_by  INTEGER REFERENCES users (id),
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	UNIQUE (id_bodega, id_producto)
);

CREATE TABLE IF NOT EXISTS historiales (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	cantidad          INTEGER NOT NULL CHECK (cantidad > 0),
	id_bodega_origen  INTEGER NOT NULL REFERENCES bodegas (id),
	id_bodega_destino INTEGER NOT NULL REFERENCES bodegas (id),
	id_inventario     INTEGER NOT NULL REFERENCES inventarios (id),
	created_by        INTEGER NOT NULL REFERENCES users (id),
	created_at        TEXT NOT NULL,
	updated_at        TEXT NOT NULL
);
`

// Store libro de inventario embebido en un archivo SQLite.
// Usa una única conexión: las transacciones quedan serializadas dentro del proceso,
// lo que equivale a bloquear las filas de inventario que tocan.
// También serializa operaciones sobre pares (bodega, producto) distintos, así que es el
// almacén de desarrollo y pruebas; la concurrencia de producción la da el driver postgres.
type Store struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base y aplica el esquema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "bodegas.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// DB expone el *sql.DB subyacente (pruebas y utilidades).
func (s *Store) DB() *sql.DB { return s.db }

// Path devuelve la ruta configurada.
func (s *Store) Path() string { return s.path }

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

// Products repositorio de productos fuera de transacción (consultas).
func (s *Store) Products() *ProductRepo { return NewProductRepository(s.db) }

// Warehouses repositorio de bodegas fuera de transacción (consultas).
func (s *Store) Warehouses() *WarehouseRepo { return NewWarehouseRepository(s.db) }
