// Package metrics records summarization runs on a private Prometheus registry and can dump
// them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tfidfsum"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder collects per-run metrics.
type Recorder struct {
	registry *prometheus.Registry

	runs            *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	inputBytes      prometheus.Histogram
	summaryLength   prometheus.Histogram
	lastRunUnixSecs prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Summarization runs by provider and outcome.",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summarization_duration_seconds",
			Help:      "Time spent inside the summarizer call.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"provider"}),
		inputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_bytes",
			Help:      "Size of the loaded input file.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		summaryLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_length_characters",
			Help:      "Length of produced summaries in characters (Unicode runes).",
			Buckets:   []float64{100, 300, 1000, 3000, 10000, 30000, 100000},
		}),
		lastRunUnixSecs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last recorded run.",
		}),
	}

	r.registry.MustRegister(r.runs, r.duration, r.inputBytes, r.summaryLength, r.lastRunUnixSecs)

	return r
}

// Registry exposes the underlying registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) RecordInput(size int) {
	r.inputBytes.Observe(float64(size))
}

// RecordRun records one summarizer call. summaryLength is ignored for failed runs.
func (r *Recorder) RecordRun(provider string, duration time.Duration, summaryLength int, err error, now time.Time) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	r.runs.WithLabelValues(provider, outcome).Inc()
	r.duration.WithLabelValues(provider).Observe(duration.Seconds())
	if err == nil {
		r.summaryLength.Observe(float64(summaryLength))
	}
	r.lastRunUnixSecs.Set(float64(now.Unix()))
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
