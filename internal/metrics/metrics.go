// Package metrics exposes Prometheus collectors for comparisons.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

// Recorder holds the collectors for one registry.
type Recorder struct {
	comparisons *prometheus.CounterVec
	similarity  prometheus.Histogram
	duration    *prometheus.HistogramVec
	errors      *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		comparisons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "simhash",
				Name:      "comparisons_total",
				Help:      "Number of document comparisons by verdict.",
			},
			[]string{"verdict"},
		),
		similarity: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "simhash",
				Name:      "similarity_ratio",
				Help:      "Distribution of similarity ratios.",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "simhash",
				Name:      "request_duration_seconds",
				Help:      "Time spent handling API requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "simhash",
				Name:      "request_errors_total",
				Help:      "Number of rejected API requests.",
			},
			[]string{"path", "status"},
		),
	}
	reg.MustRegister(r.comparisons, r.similarity, r.duration, r.errors)
	return r
}

// ObserveResult records one finished comparison.
func (r *Recorder) ObserveResult(result domain.Result) {
	r.comparisons.WithLabelValues(result.Verdict.String()).Inc()
	r.similarity.Observe(result.Similarity)
}

// ObserveRequest records the latency of a request.
func (r *Recorder) ObserveRequest(path string, d time.Duration) {
	r.duration.WithLabelValues(path).Observe(d.Seconds())
}

// ObserveError counts a rejected request.
func (r *Recorder) ObserveError(path, status string) {
	r.errors.WithLabelValues(path, status).Inc()
}
