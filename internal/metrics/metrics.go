// Package metrics is the optional A5 observer: Prometheus counters and a
// histogram the orchestrator drives through the same narrow MetricsSink
// interface it uses for progress reporting. internal/core never imports
// this package directly — only cmd/bytesradar wires a real Recorder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements core.MetricsSink against a prometheus.Registry.
type Recorder struct {
	bytesRead       prometheus.Counter
	filesAnalyzed   prometheus.Counter
	analysisSeconds prometheus.Histogram
}

// NewRecorder registers bytesradar's metrics against reg and returns a
// Recorder ready to pass as a core.MetricsSink.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bytesradar_bytes_read_total",
			Help: "Total bytes read from analyzed archive entries.",
		}),
		filesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bytesradar_files_analyzed_total",
			Help: "Total files that passed filtering and were classified.",
		}),
		analysisSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bytesradar_analysis_duration_seconds",
			Help:    "Wall-clock duration of a full repository analysis.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
	reg.MustRegister(r.bytesRead, r.filesAnalyzed, r.analysisSeconds)
	return r
}

func (r *Recorder) RecordBytesRead(n uint64) {
	r.bytesRead.Add(float64(n))
}

func (r *Recorder) RecordFileAnalyzed() {
	r.filesAnalyzed.Inc()
}

func (r *Recorder) RecordAnalysisDuration(seconds float64) {
	r.analysisSeconds.Observe(seconds)
}
