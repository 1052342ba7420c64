package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
)

const namespace = "bodegas"

var _ inventory.Metrics = (*StockMetrics)(nil)

// StockMetrics contadores de las operaciones de inventario sobre un registro propio.
type StockMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	units      *prometheus.CounterVec
	quantity   *prometheus.HistogramVec
}

// New crea el registro con las métricas del motor y las del proceso Go.
func New() *StockMetrics {
	reg := prometheus.NewRegistry()
	m := &StockMetrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_operations_total",
			Help:      "Operaciones de inventario por tipo y resultado.",
		}, []string{"operation", "outcome"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_units_total",
			Help:      "Unidades agregadas o trasladadas con éxito.",
		}, []string{"operation"}),
		quantity: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stock_operation_quantity",
			Help:      "Cantidad solicitada por operación.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"operation"}),
	}
	reg.MustRegister(
		m.operations, m.units, m.quantity,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveAddStock registra el resultado de una carga de inventario.
func (m *StockMetrics) ObserveAddStock(outcome string, quantity int64) {
	m.observe("add_stock", outcome, quantity, outcome == inventory.OutcomeCreated || outcome == inventory.OutcomeUpdated)
}

// ObserveTransfer registra el resultado de un traslado.
func (m *StockMetrics) ObserveTransfer(outcome string, quantity int64) {
	m.observe("transfer", outcome, quantity, outcome == inventory.OutcomeTransferred)
}

func (m *StockMetrics) observe(operation, outcome string, quantity int64, applied bool) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	if quantity >= 0 {
		m.quantity.WithLabelValues(operation).Observe(float64(quantity))
	}
	if applied {
		m.units.WithLabelValues(operation).Add(float64(quantity))
	}
}

// Registry expone el registro (pruebas).
func (m *StockMetrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve el formato de exposición de Prometheus.
func (m *StockMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
