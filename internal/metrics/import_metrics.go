package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	FeedProducts  = "products"
	FeedShipments = "shipments"

	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// ImportMetrics captures CSV import throughput for operational dashboards.
type ImportMetrics struct {
	runs *prometheus.CounterVec
	rows *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *ImportMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saiteki_import_runs_total",
		Help: "CSV import runs by feed.",
	}, []string{"feed"})
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saiteki_import_rows_total",
		Help: "CSV import row outcomes by feed.",
	}, []string{"feed", "result"})

	registerer.MustRegister(runs, rows)

	return &ImportMetrics{runs: runs, rows: rows}
}

// IncRun increments the run counter for an import feed.
func (m *ImportMetrics) IncRun(feed string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(feed).Inc()
}

// AddRows adds row outcomes for an import feed.
func (m *ImportMetrics) AddRows(feed, result string, count int) {
	if m == nil || m.rows == nil || count <= 0 {
		return
	}
	m.rows.WithLabelValues(feed, result).Add(float64(count))
}
