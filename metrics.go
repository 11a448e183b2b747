package scfind

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector receives operational metrics from IndexStore. Implement
// this to integrate with a monitoring system.
type MetricsCollector interface {
	// RecordIngest is called after every IngestSlice call.
	RecordIngest(cells int, duration time.Duration, err error)

	// RecordQuery is called after every QueryGenes or FindCellTypes call.
	RecordQuery(op string, geneCount int, duration time.Duration, err error)

	// RecordMarkerMining is called after every FindMarkerGenes call.
	RecordMarkerMining(patternsFound int, duration time.Duration, err error)

	// RecordMerge is called after every Merge call.
	RecordMerge(postingsAbsorbed int, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything. Use when metrics are not
// needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIngest(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMarkerMining(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordMerge(int, time.Duration, error)         {}

// BasicMetricsCollector is a simple in-memory atomic-counter collector,
// useful for tests and debugging without an external dependency.
type BasicMetricsCollector struct {
	IngestCount      atomic.Int64
	IngestErrors     atomic.Int64
	IngestCellsTotal atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	MarkerMiningRuns atomic.Int64
	MergeCount       atomic.Int64
	MergeErrors      atomic.Int64
}

func (b *BasicMetricsCollector) RecordIngest(cells int, _ time.Duration, err error) {
	b.IngestCount.Add(1)
	b.IngestCellsTotal.Add(int64(cells))
	if err != nil {
		b.IngestErrors.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordQuery(_ string, _ int, _ time.Duration, err error) {
	b.QueryCount.Add(1)
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordMarkerMining(_ int, _ time.Duration, _ error) {
	b.MarkerMiningRuns.Add(1)
}

func (b *BasicMetricsCollector) RecordMerge(_ int, _ time.Duration, err error) {
	b.MergeCount.Add(1)
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// PrometheusMetrics is a MetricsCollector backed by
// github.com/prometheus/client_golang.
type PrometheusMetrics struct {
	ingestTotal     *prometheus.CounterVec
	ingestCells     prometheus.Counter
	ingestDuration  prometheus.Histogram
	queryTotal      *prometheus.CounterVec
	queryDuration   *prometheus.HistogramVec
	markerPatterns  prometheus.Histogram
	mergeTotal      *prometheus.CounterVec
	mergeDuration   prometheus.Histogram
}

// NewPrometheusMetrics registers scfind's metrics against reg and returns a
// MetricsCollector backed by them. Pass prometheus.NewRegistry() (or
// prometheus.DefaultRegisterer) for reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		ingestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scfind",
			Name:      "ingest_total",
			Help:      "Number of IngestSlice calls, partitioned by outcome.",
		}, []string{"outcome"}),
		ingestCells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scfind",
			Name:      "ingest_cells_total",
			Help:      "Total cells added across all ingested slices.",
		}),
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scfind",
			Name:      "ingest_duration_seconds",
			Help:      "IngestSlice latency.",
		}),
		queryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scfind",
			Name:      "query_total",
			Help:      "Number of query calls, partitioned by operation and outcome.",
		}, []string{"op", "outcome"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scfind",
			Name:      "query_duration_seconds",
			Help:      "Query latency by operation.",
		}, []string{"op"}),
		markerPatterns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scfind",
			Name:      "marker_patterns_found",
			Help:      "Number of frequent itemsets returned per FindMarkerGenes call.",
		}),
		mergeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scfind",
			Name:      "merge_total",
			Help:      "Number of Merge calls, partitioned by outcome.",
		}, []string{"outcome"}),
		mergeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scfind",
			Name:      "merge_duration_seconds",
			Help:      "Merge latency.",
		}),
	}

	reg.MustRegister(
		m.ingestTotal, m.ingestCells, m.ingestDuration,
		m.queryTotal, m.queryDuration, m.markerPatterns,
		m.mergeTotal, m.mergeDuration,
	)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *PrometheusMetrics) RecordIngest(cells int, duration time.Duration, err error) {
	m.ingestTotal.WithLabelValues(outcome(err)).Inc()
	m.ingestCells.Add(float64(cells))
	m.ingestDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordQuery(op string, _ int, duration time.Duration, err error) {
	m.queryTotal.WithLabelValues(op, outcome(err)).Inc()
	m.queryDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordMarkerMining(patternsFound int, _ time.Duration, _ error) {
	m.markerPatterns.Observe(float64(patternsFound))
}

func (m *PrometheusMetrics) RecordMerge(_ int, duration time.Duration, err error) {
	m.mergeTotal.WithLabelValues(outcome(err)).Inc()
	m.mergeDuration.Observe(duration.Seconds())
}
