// Package metrics expone métricas Prometheus del painel.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "painel_movimentos"

// Metrics registro propio (no el global) para que los tests puedan crear varios.
type Metrics struct {
	registry     *prometheus.Registry
	datasetRows  prometheus.Gauge
	views        *prometheus.CounterVec
	aggregations *prometheus.HistogramVec
}

// New registra los colectores del proceso y del painel.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Movimientos cargados tras la limpieza.",
		}),
		views: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_total",
			Help:      "Vistas servidas por tipo (dashboard, chart, series, leaderboard, pdf, xlsx).",
		}, []string{"view"}),
		aggregations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Duración de la agregación por modo.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"mode"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.datasetRows,
		m.views,
		m.aggregations,
	)
	return m
}

// SetDatasetRows fija el tamaño del conjunto cargado.
func (m *Metrics) SetDatasetRows(n int) { m.datasetRows.Set(float64(n)) }

// IncView cuenta una vista servida.
func (m *Metrics) IncView(view string) { m.views.WithLabelValues(view).Inc() }

// ObserveAggregation implementa movements.Recorder.
func (m *Metrics) ObserveAggregation(mode string, d time.Duration) {
	m.aggregations.WithLabelValues(mode).Observe(d.Seconds())
}

// Handler endpoint de exposición para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry acceso directo (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
