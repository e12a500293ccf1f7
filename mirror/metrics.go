package mirror

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	RowsMirrored *prometheus.CounterVec
	Batches      *prometheus.CounterVec
	FetchErrors  *prometheus.CounterVec
	BufferedRows *prometheus.GaugeVec
	SpooledRows  *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		RowsMirrored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mirror_rows_total",
			Help: "total number of curve rows written to the sink",
		}, []string{"table"}),
		Batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mirror_batches_total",
			Help: "total number of publish attempts",
		}, []string{"table", "status"}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mirror_fetch_errors_total",
			Help: "total number of failed store pulls",
		}, []string{"table"}),
		BufferedRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mirror_buffered_rows",
			Help: "number of rows waiting in memory for the next tick",
		}, []string{"table"}),
		SpooledRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mirror_spooled_rows",
			Help: "number of rows waiting in the on-disk spool",
		}, []string{"table"}),
	}

	metrics.Enable(reg)
	return metrics
}

func (m *Metrics) Enable(reg prometheus.Registerer) {
	reg.MustRegister(m.RowsMirrored)
	reg.MustRegister(m.Batches)
	reg.MustRegister(m.FetchErrors)
	reg.MustRegister(m.BufferedRows)
	reg.MustRegister(m.SpooledRows)
}

func (m *Metrics) Disable(reg prometheus.Registerer) {
	reg.Unregister(m.RowsMirrored)
	reg.Unregister(m.Batches)
	reg.Unregister(m.FetchErrors)
	reg.Unregister(m.BufferedRows)
	reg.Unregister(m.SpooledRows)
}
