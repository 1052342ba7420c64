package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// AddStockRequest body para POST /api/inventarios.
// Los campos se decodifican crudos para distinguir "ausente" de "no entero".
type AddStockRequest struct {
	ProductID   json.RawMessage `json:"id_producto"`
	WarehouseID json.RawMessage `json:"id_bodega"`
	Quantity    json.RawMessage `json:"cantidad"`
	CreatedBy   json.RawMessage `json:"created_by,omitempty"`
}

// ToInput convierte el body a la entrada del caso de uso. defaultActor se usa si no llega created_by.
func (r AddStockRequest) ToInput(defaultActor int64) inventory.AddStockInput {
	ve := domain.NewValidationError()
	in := inventory.AddStockInput{
		ProductID:   refField(ve, inventory.FieldProductID, r.ProductID),
		WarehouseID: refField(ve, inventory.FieldWarehouseID, r.WarehouseID),
		Quantity:    quantityField(ve, r.Quantity),
		ActorID:     actorField(ve, r.CreatedBy, defaultActor),
	}
	if ve.OrNil() != nil {
		in.FormatErrors = ve
	}
	return in
}

// refField referencia obligatoria: ausente -> obligatorio; no entera -> seleccionado inválido.
func refField(ve *domain.ValidationError, field string, raw json.RawMessage) int64 {
	n, st := parseInt(raw)
	switch st {
	case intMissing:
		ve.Add(field, inventory.RequiredMessage(field))
	case intInvalid:
		ve.Add(field, inventory.InvalidRefMessage(field))
	}
	return n
}

func quantityField(ve *domain.ValidationError, raw json.RawMessage) int64 {
	n, st := parseInt(raw)
	switch st {
	case intMissing:
		ve.Add(inventory.FieldQuantity, inventory.RequiredMessage(inventory.FieldQuantity))
	case intInvalid:
		ve.Add(inventory.FieldQuantity, inventory.IntegerMessage(inventory.FieldQuantity))
	}
	return n
}

// actorField created_by es opcional; si falta se usa el actor por defecto.
func actorField(ve *domain.ValidationError, raw json.RawMessage, def int64) int64 {
	n, st := parseInt(raw)
	switch st {
	case intMissing:
		return def
	case intInvalid:
		ve.Add(inventory.FieldCreatedBy, inventory.InvalidRefMessage(inventory.FieldCreatedBy))
	}
	return n
}

// InventoryResponse fila de inventario con bodega y producto cuando están cargados.
type InventoryResponse struct {
	ID          int64              `json:"id"`
	WarehouseID int64              `json:"id_bodega"`
	ProductID   int64              `json:"id_producto"`
	Quantity    int64              `json:"cantidad"`
	CreatedBy   int64              `json:"created_by"`
	UpdatedBy   *int64             `json:"updated_by"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Warehouse   *WarehouseResponse `json:"bodega,omitempty"`
	Product     *ProductResponse   `json:"producto,omitempty"`
}

// NewInventoryResponse mapea la entidad.
func NewInventoryResponse(rec *entity.InventoryRecord) *InventoryResponse {
	if rec == nil {
		return nil
	}
	return &InventoryResponse{
		ID:          rec.ID,
		WarehouseID: rec.WarehouseID,
		ProductID:   rec.ProductID,
		Quantity:    rec.Quantity,
		CreatedBy:   rec.CreatedBy,
		UpdatedBy:   rec.UpdatedBy,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Warehouse:   NewWarehouseResponse(rec.Warehouse),
		Product:     NewProductResponse(rec.Product),
	}
}
