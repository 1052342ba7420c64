package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// AddStockInput entrada para sumar cantidad al inventario de un producto en una bodega.
// ActorID ya viene resuelto desde la frontera HTTP (token, created_by o actor por defecto).
type AddStockInput struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	ActorID     int64

	// FormatErrors errores de formato (campo ausente o no entero) ya detectados al decodificar.
	FormatErrors *domain.ValidationError
}

// AddStockResult inventario resultante con bodega y producto cargados.
type AddStockResult struct {
	Record           *entity.InventoryRecord
	Created          bool
	PreviousQuantity int64
}

// Message describe la operación para el usuario.
func (r *AddStockResult) Message() string {
	if r.Created {
		return fmt.Sprintf("Nuevo inventario creado con cantidad: %d", r.Record.Quantity)
	}
	return fmt.Sprintf("Inventario actualizado. Cantidad anterior: %d, Nueva cantidad: %d", r.PreviousQuantity, r.Record.Quantity)
}

// AddStockUseCase suma stock a la fila (bodega, producto), creándola si no existe.
// No es un "set": dos llamadas con cantidad 5 dejan 10.
type AddStockUseCase struct {
	txRunner TxRunner
	metrics  Metrics
	log      zerolog.Logger
}

// NewAddStockUseCase construye el caso de uso. metrics puede ser nil.
func NewAddStockUseCase(txRunner TxRunner, metrics Metrics, log zerolog.Logger) *AddStockUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &AddStockUseCase{txRunner: txRunner, metrics: metrics, log: log}
}

// AddStock valida referencias y aplica el incremento dentro de una sola transacción.
func (uc *AddStockUseCase) AddStock(ctx context.Context, in AddStockInput) (*AddStockResult, error) {
	ve := newValidation(in.FormatErrors)
	checkRefID(ve, FieldProductID, in.ProductID)
	checkRefID(ve, FieldWarehouseID, in.WarehouseID)
	checkRefID(ve, FieldCreatedBy, in.ActorID)
	checkMin(ve, FieldQuantity, in.Quantity, 0)

	var result *AddStockResult
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		product, err := lookupProduct(ctx, repos, ve, in.ProductID)
		if err != nil {
			return err
		}
		warehouse, err := lookupWarehouse(ctx, repos, ve, FieldWarehouseID, in.WarehouseID)
		if err != nil {
			return err
		}
		if err := lookupActor(ctx, repos, ve, in.ActorID); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		rec, created, err := repos.Inventory.Increment(ctx, in.WarehouseID, in.ProductID, in.Quantity, in.ActorID)
		if err != nil {
			return err
		}
		rec.Warehouse = warehouse
		rec.Product = product
		result = &AddStockResult{Record: rec, Created: created}
		if !created {
			result.PreviousQuantity = rec.Quantity - in.Quantity
		}
		return nil
	})
	if err != nil {
		err = domain.AsStorage("agregar inventario", err)
		outcome := outcomeOf(err)
		uc.metrics.ObserveAddStock(outcome, in.Quantity)
		ev := uc.log.Warn()
		if outcome == OutcomeStorage {
			ev = uc.log.Error()
		}
		ev.Err(err).
			Int64("id_producto", in.ProductID).
			Int64("id_bodega", in.WarehouseID).
			Int64("cantidad", in.Quantity).
			Str("resultado", outcome).
			Msg("inventario no modificado")
		return nil, err
	}

	accion, outcome := "actualizado", OutcomeUpdated
	if result.Created {
		accion, outcome = "creado", OutcomeCreated
	}
	uc.metrics.ObserveAddStock(outcome, in.Quantity)
	uc.log.Info().
		Int64("id_inventario", result.Record.ID).
		Int64("id_producto", in.ProductID).
		Int64("id_bodega", in.WarehouseID).
		Int64("cantidad_anterior", result.PreviousQuantity).
		Int64("cantidad_nueva", result.Record.Quantity).
		Int64("actor", in.ActorID).
		Str("accion", accion).
		Msg(result.Message())
	return result, nil
}
