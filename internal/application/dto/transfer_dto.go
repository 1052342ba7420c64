package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/domain"
)

// TransferRequest body para POST /api/traslados.
type TransferRequest struct {
	ProductID         json.RawMessage `json:"id_producto"`
	SourceWarehouseID json.RawMessage `json:"id_bodega_origen"`
	DestWarehouseID   json.RawMessage `json:"id_bodega_destino"`
	Quantity          json.RawMessage `json:"cantidad"`
	CreatedBy         json.RawMessage `json:"created_by,omitempty"`
}

// ToInput convierte el body a la entrada del caso de uso.
func (r TransferRequest) ToInput(defaultActor int64) inventory.TransferInput {
	ve := domain.NewValidationError()
	in := inventory.TransferInput{
		ProductID:         refField(ve, inventory.FieldProductID, r.ProductID),
		SourceWarehouseID: refField(ve, inventory.FieldSourceWarehouse, r.SourceWarehouseID),
		DestWarehouseID:   refField(ve, inventory.FieldDestWarehouse, r.DestWarehouseID),
		Quantity:          quantityField(ve, r.Quantity),
		ActorID:           actorField(ve, r.CreatedBy, defaultActor),
	}
	if ve.OrNil() != nil {
		in.FormatErrors = ve
	}
	return in
}

// TransferHistoryResponse registro del historial con sus relaciones.
type TransferHistoryResponse struct {
	ID                int64              `json:"id"`
	Quantity          int64              `json:"cantidad"`
	SourceWarehouseID int64              `json:"id_bodega_origen"`
	DestWarehouseID   int64              `json:"id_bodega_destino"`
	InventoryID       int64              `json:"id_inventario"`
	CreatedBy         int64              `json:"created_by"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	SourceWarehouse   *WarehouseResponse `json:"bodega_origen,omitempty"`
	DestWarehouse     *WarehouseResponse `json:"bodega_destino,omitempty"`
	Inventory         *InventoryResponse `json:"inventario,omitempty"`
}

// TransferResponse data de un traslado exitoso.
type TransferResponse struct {
	History     *TransferHistoryResponse `json:"historial"`
	Source      *InventoryResponse       `json:"inventario_origen_actualizado"`
	Destination *InventoryResponse       `json:"inventario_destino_actualizado"`
}

// NewTransferResponse mapea el resultado del traslado.
func NewTransferResponse(res *inventory.TransferResult) *TransferResponse {
	h := res.History
	// En el historial el inventario va sin relaciones anidadas.
	var inv *InventoryResponse
	if h.Inventory != nil {
		inv = NewInventoryResponse(h.Inventory)
		inv.Warehouse, inv.Product = nil, nil
	}
	return &TransferResponse{
		History: &TransferHistoryResponse{
			ID:                h.ID,
			Quantity:          h.Quantity,
			SourceWarehouseID: h.SourceWarehouseID,
			DestWarehouseID:   h.DestWarehouseID,
			InventoryID:       h.InventoryID,
			CreatedBy:         h.CreatedBy,
			CreatedAt:         h.CreatedAt,
			UpdatedAt:         h.UpdatedAt,
			SourceWarehouse:   NewWarehouseResponse(h.SourceWarehouse),
			DestWarehouse:     NewWarehouseResponse(h.DestWarehouse),
			Inventory:         inv,
		},
		Source:      NewInventoryResponse(res.Source),
		Destination: NewInventoryResponse(res.Destination),
	}
}
