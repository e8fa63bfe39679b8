package core

// ProgressSink receives updates as the orchestrator streams through an
// archive. It is an out-of-scope collaborator per spec §1/§6 — the core
// only calls it, never implements a concrete renderer. Modeled on the
// teacher's internal/progress Reporter/Handler split: on_progress fires
// per-entry, on_complete/on_error fire once at the end of an analysis.
type ProgressSink interface {
	OnProgress(bytesReadSoFar uint64, totalBytesIfKnown int64, filesSoFar uint64, currentPath string)
	OnComplete(analysis *ProjectAnalysis)
	OnError(err *Error)
}

// NullProgressSink implements ProgressSink with no-ops, for callers that
// don't want progress reporting.
type NullProgressSink struct{}

func (NullProgressSink) OnProgress(uint64, int64, uint64, string) {}
func (NullProgressSink) OnComplete(*ProjectAnalysis)              {}
func (NullProgressSink) OnError(*Error)                           {}

// MetricsSink is the narrow interface A5 (internal/metrics) implements.
// The core calls it exactly where it calls ProgressSink, but never imports
// prometheus/client_golang directly — only cmd/bytesradar wires a real one.
type MetricsSink interface {
	RecordBytesRead(n uint64)
	RecordFileAnalyzed()
	RecordAnalysisDuration(seconds float64)
}

// NullMetricsSink implements MetricsSink with no-ops.
type NullMetricsSink struct{}

func (NullMetricsSink) RecordBytesRead(uint64)        {}
func (NullMetricsSink) RecordFileAnalyzed()           {}
func (NullMetricsSink) RecordAnalysisDuration(float64) {}
