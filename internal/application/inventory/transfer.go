package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// TransferInput entrada para trasladar cantidad de un producto entre dos bodegas.
type TransferInput struct {
	ProductID         int64
	SourceWarehouseID int64
	DestWarehouseID   int64
	Quantity          int64
	ActorID           int64
	FormatErrors      *domain.ValidationError
}

// TransferResult historial creado e inventarios de origen y destino ya actualizados.
type TransferResult struct {
	History     *entity.TransferRecord
	Source      *entity.InventoryRecord
	Destination *entity.InventoryRecord
}

// Message describe el traslado para el usuario.
func (r *TransferResult) Message() string {
	return fmt.Sprintf("Traslado de %d unidades realizado exitosamente", r.History.Quantity)
}

// TransferUseCase mueve stock entre bodegas de forma atómica y deja registro en el historial.
type TransferUseCase struct {
	txRunner TxRunner
	metrics  Metrics
	log      zerolog.Logger
}

// NewTransferUseCase construye el caso de uso. metrics puede ser nil.
func NewTransferUseCase(txRunner TxRunner, metrics Metrics, log zerolog.Logger) *TransferUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &TransferUseCase{txRunner: txRunner, metrics: metrics, log: log}
}

// Transfer valida, bloquea las filas de inventario de origen y destino (SELECT FOR UPDATE),
// descuenta en origen, suma o crea en destino y registra el historial. Todo o nada.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	ve := newValidation(in.FormatErrors)
	checkRefID(ve, FieldProductID, in.ProductID)
	checkRefID(ve, FieldSourceWarehouse, in.SourceWarehouseID)
	checkRefID(ve, FieldDestWarehouse, in.DestWarehouseID)
	checkRefID(ve, FieldCreatedBy, in.ActorID)
	checkMin(ve, FieldQuantity, in.Quantity, 1)

	var result *TransferResult
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		product, err := lookupProduct(ctx, repos, ve, in.ProductID)
		if err != nil {
			return err
		}
		source, err := lookupWarehouse(ctx, repos, ve, FieldSourceWarehouse, in.SourceWarehouseID)
		if err != nil {
			return err
		}
		dest, err := lookupWarehouse(ctx, repos, ve, FieldDestWarehouse, in.DestWarehouseID)
		if err != nil {
			return err
		}
		if err := lookupActor(ctx, repos, ve, in.ActorID); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		if in.SourceWarehouseID == in.DestWarehouseID {
			return &domain.BusinessRuleError{Err: domain.ErrSameWarehouse}
		}

		// Las dos filas se bloquean en orden ascendente de bodega: traslados cruzados A→B y B→A no se interbloquean.
		locked := make(map[int64]*entity.InventoryRecord, 2)
		for _, wh := range lockOrder(in.SourceWarehouseID, in.DestWarehouseID) {
			rec, err := repos.Inventory.GetForUpdate(ctx, wh, in.ProductID)
			if err != nil {
				return err
			}
			locked[wh] = rec
		}

		origin := locked[in.SourceWarehouseID]
		if origin == nil {
			return &domain.BusinessRuleError{Err: domain.ErrNoSourceInventory}
		}
		if origin.Quantity < in.Quantity {
			return domain.NewInsufficientStockError(origin.Quantity, in.Quantity)
		}

		updatedOrigin, err := repos.Inventory.Decrement(ctx, origin.ID, in.Quantity, in.ActorID)
		if err != nil {
			return err
		}
		updatedDest, _, err := repos.Inventory.Increment(ctx, in.DestWarehouseID, in.ProductID, in.Quantity, in.ActorID)
		if err != nil {
			return err
		}

		history := &entity.TransferRecord{
			Quantity:          in.Quantity,
			SourceWarehouseID: in.SourceWarehouseID,
			DestWarehouseID:   in.DestWarehouseID,
			InventoryID:       updatedOrigin.ID,
			CreatedBy:         in.ActorID,
		}
		if err := repos.Transfers.Create(ctx, history); err != nil {
			return err
		}

		updatedOrigin.Warehouse, updatedOrigin.Product = source, product
		updatedDest.Warehouse, updatedDest.Product = dest, product
		history.SourceWarehouse = source
		history.DestWarehouse = dest
		history.Inventory = updatedOrigin

		result = &TransferResult{History: history, Source: updatedOrigin, Destination: updatedDest}
		return nil
	})
	if err != nil {
		err = domain.AsStorage("trasladar inventario", err)
		outcome := outcomeOf(err)
		uc.metrics.ObserveTransfer(outcome, in.Quantity)
		ev := uc.log.Warn()
		if outcome == OutcomeStorage {
			ev = uc.log.Error()
		}
		ev.Err(err).
			Int64("id_producto", in.ProductID).
			Int64("id_bodega_origen", in.SourceWarehouseID).
			Int64("id_bodega_destino", in.DestWarehouseID).
			Int64("cantidad", in.Quantity).
			Str("resultado", outcome).
			Msg("traslado rechazado")
		return nil, err
	}

	uc.metrics.ObserveTransfer(OutcomeTransferred, in.Quantity)
	uc.log.Info().
		Int64("id_historial", result.History.ID).
		Int64("id_producto", in.ProductID).
		Int64("id_bodega_origen", in.SourceWarehouseID).
		Int64("id_bodega_destino", in.DestWarehouseID).
		Int64("cantidad", in.Quantity).
		Int64("origen_restante", result.Source.Quantity).
		Int64("destino_total", result.Destination.Quantity).
		Int64("actor", in.ActorID).
		Msg(result.Message())
	return result, nil
}

func lockOrder(a, b int64) []int64 {
	if b < a {
		return []int64{b, a}
	}
	return []int64{a, b}
}
