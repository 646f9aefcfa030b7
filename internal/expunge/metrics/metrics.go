package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the expunge analysis module.
type Metrics struct {
	// Records analyzed, labeled by structural completeness ("complete" when
	// the record had no open cases).
	RecordsAnalyzed *prometheus.CounterVec

	// Diagnostics appended to records, by kind.
	Diagnostics *prometheus.CounterVec

	// Charge verdicts written, by eligibility status.
	ChargeVerdicts *prometheus.CounterVec

	// Full analysis latency per record.
	AnalyzeLatency prometheus.Histogram
}

// New creates a new Metrics instance with all analysis metrics registered.
func New() *Metrics {
	return &Metrics{
		RecordsAnalyzed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recordexpunge_records_analyzed_total",
			Help: "Total records analyzed, by structural completeness",
		}, []string{"completeness"}), // completeness: "complete", "open_cases"

		Diagnostics: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recordexpunge_diagnostics_total",
			Help: "Total data-quality diagnostics appended to records, by kind",
		}, []string{"kind"}), // kind: "open_cases", "missing_disposition", "unrecognized_disposition"

		ChargeVerdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "recordexpunge_charge_verdicts_total",
			Help: "Total charge eligibility verdicts written, by status",
		}, []string{"status"}),

		AnalyzeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "recordexpunge_analyze_duration_seconds",
			Help:    "Duration of a full record analysis",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementRecordsAnalyzed records one completed analysis.
func (m *Metrics) IncrementRecordsAnalyzed(complete bool) {
	if m != nil {
		completeness := "complete"
		if !complete {
			completeness = "open_cases"
		}
		m.RecordsAnalyzed.WithLabelValues(completeness).Inc()
	}
}

// IncrementDiagnostic records one diagnostic of the given kind.
func (m *Metrics) IncrementDiagnostic(kind string) {
	if m != nil {
		m.Diagnostics.WithLabelValues(kind).Inc()
	}
}

// IncrementVerdict records one charge verdict by eligibility status.
func (m *Metrics) IncrementVerdict(status string) {
	if m != nil {
		m.ChargeVerdicts.WithLabelValues(status).Inc()
	}
}

// ObserveAnalyzeLatency records the duration of one record analysis.
// Call with time.Now() captured at the start of the analysis.
func (m *Metrics) ObserveAnalyzeLatency(start time.Time) {
	if m != nil {
		m.AnalyzeLatency.Observe(time.Since(start).Seconds())
	}
}
