// Package metrics records per-run counters in a private Prometheus registry.
// A batch run has no scrape endpoint, so the registry is written out in the
// node-exporter textfile format when the run finishes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the collectors of one compute run.
type Recorder struct {
	registry *prometheus.Registry

	DocumentsTotal     prometheus.Counter
	ReadFailuresTotal  prometheus.Counter
	CleanedTokensTotal prometheus.Counter
	Terms              prometheus.Gauge
	RunDuration        prometheus.Gauge
	LastRunSuccess     prometheus.Gauge
}

// New creates and registers the run collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		DocumentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tfidf_documents_total",
			Help: "Documents listed by the catalog for the run.",
		}),
		ReadFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tfidf_document_read_failures_total",
			Help: "Documents whose content could not be read and were scored as empty.",
		}),
		CleanedTokensTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tfidf_cleaned_tokens_total",
			Help: "Tokens surviving cleaning across all documents.",
		}),
		Terms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tfidf_terms",
			Help: "Distinct terms in the term-document matrix.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tfidf_last_run_duration_seconds",
			Help: "Wall-clock duration of the last run.",
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tfidf_last_run_success",
			Help: "1 if the last run completed, 0 if it failed.",
		}),
	}

	r.registry.MustRegister(
		r.DocumentsTotal,
		r.ReadFailuresTotal,
		r.CleanedTokensTotal,
		r.Terms,
		r.RunDuration,
		r.LastRunSuccess,
	)
	return r
}

// ObserveRun records the outcome of a run that started at start.
func (r *Recorder) ObserveRun(start time.Time, err error) {
	r.RunDuration.Set(time.Since(start).Seconds())
	if err != nil {
		r.LastRunSuccess.Set(0)
		return
	}
	r.LastRunSuccess.Set(1)
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
