package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// Campos de entrada tal como los expone la API.
const (
	FieldProductID       = "id_producto"
	FieldWarehouseID     = "id_bodega"
	FieldSourceWarehouse = "id_bodega_origen"
	FieldDestWarehouse   = "id_bodega_destino"
	FieldQuantity        = "cantidad"
	FieldCreatedBy       = "created_by"
)

// fieldLabel nombre legible del campo para los mensajes.
func fieldLabel(field string) string {
	switch field {
	case FieldProductID:
		return "id producto"
	case FieldWarehouseID:
		return "id bodega"
	case FieldSourceWarehouse:
		return "id bodega origen"
	case FieldDestWarehouse:
		return "id bodega destino"
	case FieldCreatedBy:
		return "created by"
	}
	return field
}

// RequiredMessage mensaje para un campo ausente.
func RequiredMessage(field string) string {
	return fmt.Sprintf("El campo %s es obligatorio.", fieldLabel(field))
}

// IntegerMessage mensaje para un valor que no es entero.
func IntegerMessage(field string) string {
	return fmt.Sprintf("El campo %s debe ser un número entero.", fieldLabel(field))
}

// MinMessage mensaje para un valor por debajo del mínimo.
func MinMessage(field string, min int64) string {
	return fmt.Sprintf("El campo %s debe ser al menos %d.", fieldLabel(field), min)
}

// InvalidRefMessage mensaje para una referencia que no existe.
func InvalidRefMessage(field string) string {
	return fmt.Sprintf("El %s seleccionado es inválido.", fieldLabel(field))
}

func checkMin(ve *domain.ValidationError, field string, v, min int64) {
	if !ve.Has(field) && v < min {
		ve.Add(field, MinMessage(field, min))
	}
}

// newValidation arranca con los errores de formato que detectó la frontera.
func newValidation(format *domain.ValidationError) *domain.ValidationError {
	ve := domain.NewValidationError()
	ve.Merge(format)
	return ve
}

// checkRefID marca la referencia como inválida si no es un id positivo; devuelve si vale la pena consultarla.
func checkRefID(ve *domain.ValidationError, field string, id int64) bool {
	if ve.Has(field) {
		return false
	}
	if id <= 0 {
		ve.Add(field, InvalidRefMessage(field))
		return false
	}
	return true
}

func lookupProduct(ctx context.Context, repos Repos, ve *domain.ValidationError, id int64) (*entity.Product, error) {
	if ve.Has(FieldProductID) {
		return nil, nil
	}
	p, err := repos.Products.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		ve.Add(FieldProductID, InvalidRefMessage(FieldProductID))
	}
	return p, nil
}

func lookupWarehouse(ctx context.Context, repos Repos, ve *domain.ValidationError, field string, id int64) (*entity.Warehouse, error) {
	if ve.Has(field) {
		return nil, nil
	}
	w, err := repos.Warehouses.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		ve.Add(field, InvalidRefMessage(field))
	}
	return w, nil
}

func lookupActor(ctx context.Context, repos Repos, ve *domain.ValidationError, id int64) error {
	if ve.Has(FieldCreatedBy) {
		return nil
	}
	ok, err := repos.Users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		ve.Add(FieldCreatedBy, InvalidRefMessage(FieldCreatedBy))
	}
	return nil
}

// outcomeOf clasifica un error para métricas y nivel de log.
func outcomeOf(err error) string {
	var (
		ve *domain.ValidationError
		be *domain.BusinessRuleError
	)
	switch {
	case errors.As(err, &ve):
		return OutcomeValidation
	case errors.As(err, &be):
		return OutcomeRejected
	default:
		return OutcomeStorage
	}
}
