package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/application/inventory"
)

func decodeAddStock(t *testing.T, body string) inventory.AddStockInput {
	t.Helper()
	var req dto.AddStockRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req.ToInput(1)
}

func TestAddStockRequest_NumerosYStrings(t *testing.T) {
	in := decodeAddStock(t, `{"id_producto": 3, "id_bodega": "2", "cantidad": " 7 "}`)
	assert.Nil(t, in.FormatErrors)
	assert.Equal(t, int64(3), in.ProductID)
	assert.Equal(t, int64(2), in.WarehouseID)
	assert.Equal(t, int64(7), in.Quantity)
	assert.Equal(t, int64(1), in.ActorID, "sin created_by se usa el actor por defecto")
}

func TestAddStockRequest_CreatedByExplicito(t *testing.T) {
	in := decodeAddStock(t, `{"id_producto": 1, "id_bodega": 1, "cantidad": 0, "created_by": 4}`)
	assert.Nil(t, in.FormatErrors)
	assert.Equal(t, int64(4), in.ActorID)
}

func TestAddStockRequest_ErroresDeFormato(t *testing.T) {
	in := decodeAddStock(t, `{"id_bodega": null, "cantidad": 2.5, "created_by": "abc"}`)
	require.NotNil(t, in.FormatErrors)
	f := in.FormatErrors.Fields
	assert.Equal(t, []string{"El campo id producto es obligatorio."}, f[inventory.FieldProductID])
	assert.Equal(t, []string{"El campo id bodega es obligatorio."}, f[inventory.FieldWarehouseID])
	assert.Equal(t, []string{"El campo cantidad debe ser un número entero."}, f[inventory.FieldQuantity])
	assert.Equal(t, []string{"El created by seleccionado es inválido."}, f[inventory.FieldCreatedBy])
}

func TestTransferRequest_ToInput(t *testing.T) {
	var req dto.TransferRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id_producto": 1, "id_bodega_origen": 1, "id_bodega_destino": "x", "cantidad": ""}`), &req))
	in := req.ToInput(9)

	assert.Equal(t, int64(9), in.ActorID)
	require.NotNil(t, in.FormatErrors)
	assert.Equal(t, []string{"El id bodega destino seleccionado es inválido."}, in.FormatErrors.Fields[inventory.FieldDestWarehouse])
	assert.Equal(t, []string{"El campo cantidad es obligatorio."}, in.FormatErrors.Fields[inventory.FieldQuantity])
	assert.False(t, in.FormatErrors.Has(inventory.FieldSourceWarehouse))
}

func TestResponse_OmiteCamposVacios(t *testing.T) {
	b, err := json.Marshal(dto.Fail("La bodega origen y destino no pueden ser la misma", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "La bodega origen y destino no pueden ser la misma"}`, string(b))
}
