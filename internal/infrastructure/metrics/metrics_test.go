package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/infrastructure/metrics"
)

func TestStockMetrics_CuentaPorResultado(t *testing.T) {
	m := metrics.New()
	m.ObserveAddStock(inventory.OutcomeCreated, 5)
	m.ObserveAddStock(inventory.OutcomeUpdated, 3)
	m.ObserveTransfer(inventory.OutcomeTransferred, 4)
	m.ObserveTransfer(inventory.OutcomeRejected, 100)

	expected := `
# HELP bodegas_stock_units_total Unidades agregadas o trasladadas con éxito.
# TYPE bodegas_stock_units_total counter
bodegas_stock_units_total{operation="add_stock"} 8
bodegas_stock_units_total{operation="transfer"} 4
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "bodegas_stock_units_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "bodegas_stock_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestStockMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveTransfer(inventory.OutcomeStorage, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bodegas_stock_operations_total{operation="transfer",outcome="storage_error"} 1`)
}
