package inventory

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Products   repository.ProductRepository
	Warehouses repository.WarehouseRepository
	Users      repository.UserRepository
	Inventory  repository.InventoryRepository
	Transfers  repository.TransferRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback si devuelve error o si ctx se cancela antes del commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// Metrics registra el resultado de cada operación del motor.
type Metrics interface {
	ObserveAddStock(outcome string, quantity int64)
	ObserveTransfer(outcome string, quantity int64)
}

// Resultados posibles de una operación.
const (
	OutcomeCreated     = "created"
	OutcomeUpdated     = "updated"
	OutcomeTransferred = "transferred"
	OutcomeValidation  = "validation_error"
	OutcomeRejected    = "business_rule_error"
	OutcomeStorage     = "storage_error"
)

type nopMetrics struct{}

func (nopMetrics) ObserveAddStock(string, int64) {}
func (nopMetrics) ObserveTransfer(string, int64) {}
