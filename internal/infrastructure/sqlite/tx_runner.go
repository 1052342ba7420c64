package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
)

var _ inventory.TxRunner = (*Store)(nil)

// querier lo satisfacen *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// database/sql revierte la transacción si ctx se cancela antes del commit.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := inventory.Repos{
		Products:   NewProductRepository(tx),
		Warehouses: NewWarehouseRepository(tx),
		Users:      NewUserRepository(tx),
		Inventory:  NewInventoryRepository(tx),
		Transfers:  NewTransferRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
