package inventory_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/domain"
)

func TestAddStock_SumaNoReemplaza(t *testing.T) {
	store := newMemStore()
	m := &countingMetrics{}
	uc := inventory.NewAddStockUseCase(store, m, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.AddStock(ctx, inventory.AddStockInput{ProductID: 1, WarehouseID: 1, Quantity: 5, ActorID: 1})
	require.NoError(t, err)
	res, err := uc.AddStock(ctx, inventory.AddStockInput{ProductID: 1, WarehouseID: 1, Quantity: 5, ActorID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Record.Quantity)
	assert.Equal(t, int64(5), res.PreviousQuantity)
	assert.Equal(t, "Bodega Central", res.Record.Warehouse.Name)
	assert.Equal(t, "Laptop", res.Record.Product.Name)
	assert.Equal(t, []string{inventory.OutcomeCreated, inventory.OutcomeUpdated}, m.add)
}

func TestAddStock_Validaciones(t *testing.T) {
	tests := []struct {
		name   string
		in     inventory.AddStockInput
		fields map[string][]string
	}{
		{
			name: "cantidad negativa",
			in:   inventory.AddStockInput{ProductID: 1, WarehouseID: 1, Quantity: -1, ActorID: 1},
			fields: map[string][]string{
				inventory.FieldQuantity: {"El campo cantidad debe ser al menos 0."},
			},
		},
		{
			name: "referencias inexistentes",
			in:   inventory.AddStockInput{ProductID: 9, WarehouseID: 9, Quantity: 1, ActorID: 9},
			fields: map[string][]string{
				inventory.FieldProductID:   {"El id producto seleccionado es inválido."},
				inventory.FieldWarehouseID: {"El id bodega seleccionado es inválido."},
				inventory.FieldCreatedBy:   {"El created by seleccionado es inválido."},
			},
		},
		{
			name: "errores de formato no se duplican",
			in: inventory.AddStockInput{WarehouseID: 1, ActorID: 1, FormatErrors: &domain.ValidationError{Fields: map[string][]string{
				inventory.FieldProductID: {"El campo id producto es obligatorio."},
				inventory.FieldQuantity:  {"El campo cantidad es obligatorio."},
			}}},
			fields: map[string][]string{
				inventory.FieldProductID: {"El campo id producto es obligatorio."},
				inventory.FieldQuantity:  {"El campo cantidad es obligatorio."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			m := &countingMetrics{}
			uc := inventory.NewAddStockUseCase(store, m, zerolog.Nop())

			_, err := uc.AddStock(context.Background(), tt.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.fields, ve.Fields)
			assert.Empty(t, store.state.rows)
			assert.Equal(t, []string{inventory.OutcomeValidation}, m.add)
		})
	}
}

func TestAddStock_FalloDeAlmacen(t *testing.T) {
	store := newMemStore()
	store.failOn = "increment"
	m := &countingMetrics{}
	uc := inventory.NewAddStockUseCase(store, m, zerolog.Nop())

	_, err := uc.AddStock(context.Background(), inventory.AddStockInput{ProductID: 1, WarehouseID: 1, Quantity: 1, ActorID: 1})
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{inventory.OutcomeStorage}, m.add)
}
